package get_schedule

import (
	"time"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

// UseCase use case получения расписания: окна выбора даты и набора слотов
type UseCase struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает скользящее окно из 14 дат начиная с сегодняшней
// (включительно) и фиксированный набор меток времени из каталога.
// Окно пересчитывается на каждый вызов от текущего "сейчас" и нигде
// не кэшируется.
func (uc *UseCase) Execute() *Response {
	now := uc.timeProvider.Now()
	return &Response{
		Dates: datesWindow(now),
		Slots: uc.catalog.TimeSlots(),
	}
}

// datesWindow генерирует окно выбора даты: ScheduleWindowDays последовательных
// дат, первая из них сегодняшняя
func datesWindow(now time.Time) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dates := make([]time.Time, 0, domain.ScheduleWindowDays)
	for i := 0; i < domain.ScheduleWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}
