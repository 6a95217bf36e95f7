package cancel_reservation

// Outcome вариант отображения результата отмены
type Outcome string

const (
	OutcomePositive Outcome = "positive"
	OutcomeNegative Outcome = "negative"
)

// Request модель запроса на отмену резервации.
// Confirmed: явное подтверждение деструктивного действия; без него
// запрос во внешний сервис не уходит.
type Request struct {
	Token     string
	Confirmed bool
}

// Response терминальное состояние потока отмены: текст для показа
// пользователю и вариант его оформления. Автоматического возврата к
// предыдущему виду нет.
type Response struct {
	Message string
	Outcome Outcome
}
