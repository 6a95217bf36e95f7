package cancel_reservation

import (
	"context"

	"github.com/apexshine/APX-ConfiguratorService/internal/integrations/cancellation"
)

// CancellationClient интерфейс клиента внешнего сервиса отмены
type CancellationClient interface {
	Cancel(ctx context.Context, req *cancellation.Request) (*cancellation.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
