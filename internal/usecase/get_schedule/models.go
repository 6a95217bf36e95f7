package get_schedule

import (
	"time"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

// Response модель ответа с окном выбора даты и набором слотов
type Response struct {
	Dates []time.Time       // 14 последовательных дат, начиная с сегодняшней
	Slots []domain.TimeSlot // фиксированный упорядоченный набор меток времени
}

// ContainsDate проверяет, что дата входит в окно выбора
func (r *Response) ContainsDate(date time.Time) bool {
	y, m, d := date.Date()
	for _, wd := range r.Dates {
		wy, wm, wdd := wd.Date()
		if y == wy && m == wm && d == wdd {
			return true
		}
	}
	return false
}
