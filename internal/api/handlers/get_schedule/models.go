package get_schedule

import (
	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	scheduleUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Dates []string `json:"dates"` // YYYY-MM-DD, начиная с сегодняшней
	Slots []string `json:"slots"` // метки времени в каталожном порядке
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleUC.Response) *ScheduleResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &ScheduleResponse{
		Dates: dates,
		Slots: slots,
	}
}
