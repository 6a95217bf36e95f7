package checkout

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("checkout client: internal error")

	// ErrUnavailable возвращается, когда запрос не удалось выполнить
	// (сетевая ошибка, таймаут)
	ErrUnavailable = errors.New("checkout client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("checkout client: invalid response")
)
