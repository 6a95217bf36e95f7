package handlers

import (
	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"
)

// DraftResponse HTTP-представление черновика, общее для всех операций
// конфигуратора
type DraftResponse struct {
	ID         string `json:"id"`
	Step       string `json:"step"`
	Submitting bool   `json:"submitting"`

	ServiceID   string `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
	Price       int    `json:"price"`

	Date string `json:"date"`
	Time string `json:"time,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Deposit      int    `json:"deposit"`
	PolicyNotice string `json:"policyNotice"`
}

// FromDraftView конвертирует представление сервиса в HTTP response
func FromDraftView(v *models.DraftView) *DraftResponse {
	return &DraftResponse{
		ID:           v.ID,
		Step:         string(v.Step),
		Submitting:   v.Submitting,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		Price:        v.Price,
		Date:         v.Date.Format(domain.DateFormat),
		Time:         v.Time,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Deposit:      v.Deposit,
		PolicyNotice: v.PolicyNotice,
	}
}
