package checkout

import "time"

// Request тело запроса к внешнему checkout-сервису.
//
// Намеренно не содержит ни идентификатора услуги, ни цены: внешний сервис
// выводит сумму списания на своей стороне, клиентским данным о цене он не
// доверяет. Дата сериализуется encoding/json в RFC 3339.
type Request struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Date  time.Time `json:"date"`
	Time  string    `json:"time"`
}

// Result ответ checkout-сервиса: либо URL для редиректа на оплату,
// либо текст ошибки. Оба поля пустыми быть не должны, но контракт этого
// не гарантирует; интерпретация на стороне вызывающего.
type Result struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}
