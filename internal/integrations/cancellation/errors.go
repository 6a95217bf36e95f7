package cancellation

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cancellation client: internal error")

	// ErrUnavailable возвращается, когда запрос не удалось выполнить
	// (сетевая ошибка, таймаут)
	ErrUnavailable = errors.New("cancellation client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("cancellation client: invalid response")
)
