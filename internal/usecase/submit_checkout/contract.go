package submit_checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	"github.com/apexshine/APX-ConfiguratorService/internal/integrations/checkout"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.BookingDraft) error) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CheckoutClient интерфейс клиента внешнего checkout-сервиса
type CheckoutClient interface {
	Submit(ctx context.Context, req *checkout.Request) (*checkout.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder записывает результат отправки (опционально)
type MetricsRecorder interface {
	RecordSubmission(result string)
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
