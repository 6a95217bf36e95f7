package get_services

import (
	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

type Catalog interface {
	Services() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
