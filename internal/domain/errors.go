package domain

import "errors"

var (
	// ErrIllegalTransition is returned when an action is attempted at a step
	// that does not permit it. Guard violations are no-ops for the draft.
	ErrIllegalTransition = errors.New("domain: illegal step transition")

	// ErrTimeNotSelected is returned when advancing past the schedule step
	// without a time slot picked.
	ErrTimeNotSelected = errors.New("domain: time slot not selected")

	// ErrContactDetailsMissing is returned when submitting without the
	// required contact fields.
	ErrContactDetailsMissing = errors.New("domain: contact details missing")

	// ErrSubmissionInFlight is returned when a submission is already running
	// for the draft.
	ErrSubmissionInFlight = errors.New("domain: submission already in flight")
)
