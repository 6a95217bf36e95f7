package types

import (
	"fmt"
	"time"
)

// slotLayout формат отображения слота, например "09:00 AM"
const slotLayout = "03:04 PM"

// SlotTime строковая метка временного слота в 12-часовом формате ("09:00 AM").
// Метка хранится в том же виде, в каком показывается пользователю и уходит
// во внешний checkout-сервис.
type SlotTime string

// NewSlotTime создает метку слота из time.Time
func NewSlotTime(t time.Time) SlotTime {
	return SlotTime(t.Format(slotLayout))
}

// NewSlotTimeFromString парсит и валидирует метку слота
func NewSlotTimeFromString(s string) (SlotTime, error) {
	st := SlotTime(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate проверяет формат метки
func (s SlotTime) Validate() error {
	if _, err := time.Parse(slotLayout, string(s)); err != nil {
		return fmt.Errorf("invalid slot time %q: expected format %q", string(s), slotLayout)
	}
	return nil
}

// IsZero возвращает true, если метка не установлена
func (s SlotTime) IsZero() bool {
	return s == ""
}

// Before сравнивает две метки по времени суток
func (s SlotTime) Before(other SlotTime) bool {
	a, errA := time.Parse(slotLayout, string(s))
	b, errB := time.Parse(slotLayout, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// String возвращает метку в исходном виде
func (s SlotTime) String() string {
	return string(s)
}
