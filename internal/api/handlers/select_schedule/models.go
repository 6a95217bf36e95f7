package select_schedule

import (
	"time"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"
	"github.com/apexshine/APX-ConfiguratorService/pkg/types"
)

// SelectScheduleRequest HTTP request model.
// Поля опциональны: присланное поле перезаписывает значение в черновике.
type SelectScheduleRequest struct {
	Date *string `json:"date,omitempty"` // "2025-10-15"
	Time *string `json:"time,omitempty"` // "09:00 AM"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// (с парсингом даты и валидацией формата времени)
func (r *SelectScheduleRequest) ToServiceRequest() (*models.SelectScheduleRequest, error) {
	out := &models.SelectScheduleRequest{}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		out.Date = &date
	}

	if r.Time != nil {
		slot, err := types.NewSlotTimeFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		out.Time = &slot
	}

	return out, nil
}
