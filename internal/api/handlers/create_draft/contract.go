package create_draft

import (
	"context"

	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"
)

type ConfiguratorService interface {
	CreateDraft(ctx context.Context) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
