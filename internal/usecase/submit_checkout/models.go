package submit_checkout

import "github.com/google/uuid"

// Status исход отправки на оплату
type Status string

const (
	// StatusRedirect внешний сервис вернул адрес для перехода к оплате:
	// единственный успешный исход, черновик при этом удаляется
	StatusRedirect Status = "redirect"

	// StatusRejected сервис явно отклонил отправку; текст ошибки показывается
	// пользователю дословно, черновик остаётся на шаге ввода данных
	StatusRejected Status = "rejected"

	// StatusUnavailable запрос не дошёл до сервиса или ответ не разобрался;
	// пользователю показывается обобщённое сообщение
	StatusUnavailable Status = "unavailable"
)

// Request модель запроса на отправку черновика
type Request struct {
	DraftID uuid.UUID
}

// Response модель результата отправки
type Response struct {
	Status       Status
	RedirectURL  string // заполнен при StatusRedirect
	ErrorMessage string // заполнен при StatusRejected и StatusUnavailable
}
