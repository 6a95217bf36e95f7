package advance_step

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator"
)

const (
	msgInvalidDraftID    = "invalid draft id"
	msgDraftNotFound     = "draft not found"
	msgTimeNotSelected   = "time slot must be selected first"
	msgIllegalTransition = "action is not permitted at this step"
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

// Handle POST /api/v1/drafts/{draftId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/advance - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	view, err := h.service.AdvanceToDetails(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, configurator.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/advance - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, configurator.ErrTimeNotSelected):
			h.logger.Warn("POST /drafts/{id}/advance - Time not selected: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgTimeNotSelected)

		case errors.Is(err, configurator.ErrIllegalTransition):
			h.logger.Warn("POST /drafts/{id}/advance - Illegal transition: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("POST /drafts/{id}/advance - Failed to advance: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/advance - Advanced: draft_id=%s, step=%s", draftID, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDraftView(view))
}
