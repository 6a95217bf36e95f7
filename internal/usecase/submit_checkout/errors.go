package submit_checkout

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("submit_checkout: draft not found")

	// ErrSubmissionInFlight возвращается при попытке повторной отправки,
	// пока предыдущая ещё выполняется
	ErrSubmissionInFlight = errors.New("submit_checkout: submission already in flight")

	// ErrDetailsIncomplete возвращается, когда не заполнены обязательные
	// контактные поля (имя и email)
	ErrDetailsIncomplete = errors.New("submit_checkout: contact details incomplete")

	// ErrIllegalStep возвращается при отправке не с шага ввода контактных данных
	ErrIllegalStep = errors.New("submit_checkout: draft is not at the details step")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_checkout: internal error")
)
