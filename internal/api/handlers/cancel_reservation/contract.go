package cancel_reservation

import (
	"context"

	cancelUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/cancel_reservation"
)

type CancelReservationUseCase interface {
	Execute(ctx context.Context, req *cancelUC.Request) (*cancelUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
