package get_schedule

import (
	"net/http"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
//
// Окно дат пересчитывается от текущего момента на каждый запрос.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := h.useCase.Execute()
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
