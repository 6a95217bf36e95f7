package cancel_reservation

import "strings"

// Classify относит текст результата отмены к положительному либо
// отрицательному варианту отображения.
//
// Это эвристика по свободному тексту, а не структурированный статус:
// подстрока "refunded" (с учётом регистра) или слово "success" (без учёта
// регистра) означают положительный исход. Текст отказа, в котором случайно
// встретится "success", будет классифицирован неверно: контракт с внешним
// сервисом другого не даёт. Эвристика изолирована в этой функции, чтобы при
// переходе на структурированный статус заменить ровно одно место.
func Classify(message string) Outcome {
	if strings.Contains(message, "refunded") ||
		strings.Contains(strings.ToLower(message), "success") {
		return OutcomePositive
	}
	return OutcomeNegative
}
