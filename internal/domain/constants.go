package domain

// Schedule window
const (
	// ScheduleWindowDays размер скользящего окна выбора даты (включая сегодня)
	ScheduleWindowDays = 14
)

// DepositAmount размер депозита, который внешний checkout-сервис списывает
// при подтверждении брони. Используется только в информационных текстах,
// списание выполняет внешний сервис.
const DepositAmount = 10

// RefundPolicyNotice информационный текст политики возврата. Сам порог в 24 часа
// вычисляет и применяет внешний сервис отмены, не этот.
const RefundPolicyNotice = "Cancel more than 24 hours before your slot for a refund; later cancellations forfeit the deposit."

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
