package domain

import (
	"time"

	"github.com/google/uuid"
)

// Step identifies the configurator step a draft is at.
type Step string

const (
	StepSelectService  Step = "select_service"
	StepSelectSchedule Step = "select_schedule"
	StepEnterDetails   Step = "enter_details"
	StepSubmitting     Step = "submitting"
	StepRedirected     Step = "redirected"
)

// BookingDraft is the single mutable aggregate for one in-progress reservation.
// It lives only in the active session store: created when the configurator is
// opened, mutated by user actions, and discarded on navigation away, on
// successful submission or on session expiry.
//
// ServiceName and Price are copied from the catalog entry at selection time and
// are never re-derived from a live catalog lookup afterwards.
type BookingDraft struct {
	ID uuid.UUID

	Step       Step
	Submitting bool

	ServiceID   string
	ServiceName string
	Price       int

	Date time.Time
	Time TimeSlot

	Name  string
	Email string
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingDraft creates an empty draft positioned at the service selection
// step with today's date preselected.
func NewBookingDraft(now time.Time) *BookingDraft {
	today := startOfDay(now)
	return &BookingDraft{
		ID:        uuid.New(),
		Step:      StepSelectService,
		Date:      today,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTerminal returns true if control has left the configurator.
func (d *BookingDraft) IsTerminal() bool {
	return d.Step == StepRedirected
}

// HasTimeSelected returns true if a time slot has been picked.
func (d *BookingDraft) HasTimeSelected() bool {
	return !d.Time.IsZero()
}

// HasContactDetails returns true if the required contact fields are filled.
// Phone is optional.
func (d *BookingDraft) HasContactDetails() bool {
	return d.Name != "" && d.Email != ""
}

// CanSelectService returns true if a service may be (re)selected.
func (d *BookingDraft) CanSelectService() bool {
	return !d.Submitting && !d.IsTerminal()
}

// CanEditSchedule returns true if date/time may be overwritten.
func (d *BookingDraft) CanEditSchedule() bool {
	return d.Step == StepSelectSchedule
}

// CanAdvanceToDetails returns true if the schedule step guard holds: a time
// slot must have been picked (a date is always set by default, so it is not a
// gate).
func (d *BookingDraft) CanAdvanceToDetails() bool {
	return d.Step == StepSelectSchedule && d.HasTimeSelected()
}

// CanSubmit returns true if the submit guard holds: required contact fields
// filled and no submission already in flight.
func (d *BookingDraft) CanSubmit() bool {
	return d.Step == StepEnterDetails && d.HasContactDetails() && !d.Submitting
}

// SelectService copies id, name and price from the catalog entry as one atomic
// update and advances to the schedule step. Re-selecting the same service
// yields the same draft state (idempotent re-selection).
func (d *BookingDraft) SelectService(svc Service, now time.Time) error {
	if !d.CanSelectService() {
		return ErrIllegalTransition
	}
	d.ServiceID = svc.ID
	d.ServiceName = svc.Title
	d.Price = svc.Price
	d.Step = StepSelectSchedule
	d.UpdatedAt = now
	return nil
}

// SelectDate overwrites the chosen date. Window membership is validated by the
// caller against the current schedule window.
func (d *BookingDraft) SelectDate(date time.Time, now time.Time) error {
	if !d.CanEditSchedule() {
		return ErrIllegalTransition
	}
	d.Date = startOfDay(date)
	d.UpdatedAt = now
	return nil
}

// SelectTime overwrites the chosen time slot. Label membership in the catalog
// set is validated by the caller.
func (d *BookingDraft) SelectTime(slot TimeSlot, now time.Time) error {
	if !d.CanEditSchedule() {
		return ErrIllegalTransition
	}
	d.Time = slot
	d.UpdatedAt = now
	return nil
}

// AdvanceToDetails moves from the schedule step to contact details entry.
func (d *BookingDraft) AdvanceToDetails(now time.Time) error {
	if d.Step != StepSelectSchedule {
		return ErrIllegalTransition
	}
	if !d.HasTimeSelected() {
		return ErrTimeNotSelected
	}
	d.Step = StepEnterDetails
	d.UpdatedAt = now
	return nil
}

// SetContact overwrites the contact fields. Fields are free text; validation
// beyond the non-empty submit guard is not part of the contract.
func (d *BookingDraft) SetContact(name, email, phone string, now time.Time) error {
	if d.Step != StepEnterDetails {
		return ErrIllegalTransition
	}
	d.Name = name
	d.Email = email
	d.Phone = phone
	d.UpdatedAt = now
	return nil
}

// Back performs a backward transition. Backward transitions are always
// permitted from the schedule and details steps and never clear prior
// selections.
func (d *BookingDraft) Back(now time.Time) error {
	switch d.Step {
	case StepSelectSchedule:
		d.Step = StepSelectService
	case StepEnterDetails:
		d.Step = StepSelectSchedule
	default:
		return ErrIllegalTransition
	}
	d.UpdatedAt = now
	return nil
}

// BeginSubmit enters the transient submitting state. The caller must hold the
// store lock so the in-flight check and the flag set are one atomic action.
func (d *BookingDraft) BeginSubmit(now time.Time) error {
	if d.Submitting {
		return ErrSubmissionInFlight
	}
	if d.Step != StepEnterDetails {
		return ErrIllegalTransition
	}
	if !d.HasContactDetails() {
		return ErrContactDetailsMissing
	}
	d.Submitting = true
	d.Step = StepSubmitting
	d.UpdatedAt = now
	return nil
}

// CompleteSubmit records the terminal redirected state after the external
// checkout returned a redirect target.
func (d *BookingDraft) CompleteSubmit(now time.Time) {
	d.Submitting = false
	d.Step = StepRedirected
	d.UpdatedAt = now
}

// FailSubmit releases the in-flight flag and returns the draft to the details
// step so the user may correct and resubmit. The error itself is surfaced to
// the caller, not stored on the draft.
func (d *BookingDraft) FailSubmit(now time.Time) {
	d.Submitting = false
	d.Step = StepEnterDetails
	d.UpdatedAt = now
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
