package get_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator"
)

const (
	msgInvalidDraftID = "invalid draft id"
	msgNotFound       = "draft not found"
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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("GET /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	view, err := h.service.GetDraft(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, configurator.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDraftView(view))
}
