package configurator

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("configurator: draft not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("configurator: service not found")

	// ErrInvalidTimeSlot возвращается, когда метка времени не из каталожного набора
	ErrInvalidTimeSlot = errors.New("configurator: invalid time slot")

	// ErrDateOutOfWindow возвращается, когда дата вне 14-дневного окна выбора
	ErrDateOutOfWindow = errors.New("configurator: date is outside the booking window")

	// ErrIllegalTransition возвращается при нарушении гварда перехода между шагами
	ErrIllegalTransition = errors.New("configurator: illegal step transition")

	// ErrTimeNotSelected возвращается при попытке перейти к вводу данных
	// без выбранного времени
	ErrTimeNotSelected = errors.New("configurator: time slot not selected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("configurator: internal error")
)
