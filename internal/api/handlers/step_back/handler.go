package step_back

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

// Handle POST /api/v1/drafts/{draftId}/back
//
// Обратный переход не очищает сделанный выбор.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/back - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	view, err := h.service.Back(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, configurator.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/back - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, configurator.ErrIllegalTransition):
			h.logger.Warn("POST /drafts/{id}/back - Illegal transition: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("POST /drafts/{id}/back - Failed to step back: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/back - Stepped back: draft_id=%s, step=%s", draftID, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDraftView(view))
}
