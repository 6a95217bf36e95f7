package configurator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	"github.com/apexshine/APX-ConfiguratorService/internal/usecase/get_schedule"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.BookingDraft) error) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Catalog интерфейс каталога услуг и слотов
type Catalog interface {
	Services() []domain.Service
	ServiceByID(id string) (domain.Service, bool)
	HasTimeSlot(slot domain.TimeSlot) bool
}

// ScheduleUseCase интерфейс получения актуального окна выбора даты
type ScheduleUseCase interface {
	Execute() *get_schedule.Response
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
