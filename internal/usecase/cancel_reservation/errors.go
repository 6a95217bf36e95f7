package cancel_reservation

import "errors"

var (
	// ErrNotConfirmed возвращается, когда отмена запрошена без явного
	// подтверждения. Без подтверждения исходящий запрос не выполняется.
	ErrNotConfirmed = errors.New("cancel_reservation: cancellation not confirmed")

	// ErrEmptyToken возвращается при пустом токене резервации
	ErrEmptyToken = errors.New("cancel_reservation: token is required")
)
