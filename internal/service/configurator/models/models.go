package models

import (
	"time"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

// DraftView представление черновика для вызывающего слоя
type DraftView struct {
	ID         string
	Step       domain.Step
	Submitting bool

	ServiceID   string
	ServiceName string
	Price       int

	Date time.Time
	Time string

	Name  string
	Email string
	Phone string

	Deposit      int
	PolicyNotice string
}

// SelectScheduleRequest запрос на перезапись даты и/или времени.
// nil-поле означает "не менять".
type SelectScheduleRequest struct {
	Date *time.Time
	Time *domain.TimeSlot
}

// ContactRequest запрос на перезапись контактных данных
type ContactRequest struct {
	Name  string
	Email string
	Phone string
}

// FromDomainDraft конвертирует доменный черновик в представление
func FromDomainDraft(d *domain.BookingDraft) *DraftView {
	return &DraftView{
		ID:           d.ID.String(),
		Step:         d.Step,
		Submitting:   d.Submitting,
		ServiceID:    d.ServiceID,
		ServiceName:  d.ServiceName,
		Price:        d.Price,
		Date:         d.Date,
		Time:         d.Time.String(),
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Deposit:      domain.DepositAmount,
		PolicyNotice: domain.RefundPolicyNotice,
	}
}
