package create_draft

import (
	"net/http"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
)

type Handler struct {
	service ConfiguratorService
	logger  Logger
}

func NewHandler(service ConfiguratorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.CreateDraft(r.Context())
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", view.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDraftView(view))
}
