package submit_checkout

import (
	"context"

	submitUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/submit_checkout"
)

type SubmitCheckoutUseCase interface {
	Execute(ctx context.Context, req *submitUC.Request) (*submitUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
