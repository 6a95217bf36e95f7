package get_schedule

import (
	scheduleUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/get_schedule"
)

type GetScheduleUseCase interface {
	Execute() *scheduleUC.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
