package enter_details

import (
	"context"

	"github.com/google/uuid"

	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"
)

type ConfiguratorService interface {
	SetDetails(ctx context.Context, id uuid.UUID, req *models.ContactRequest) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
