package delete_draft

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
)

const msgInvalidDraftID = "invalid draft id"

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

// Handle DELETE /api/v1/drafts/{draftId}
//
// Уход пользователя со страницы: черновик удаляется без подтверждения,
// удаление несуществующего черновика тоже успех.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	if err := h.service.DiscardDraft(r.Context(), draftID); err != nil {
		h.logger.Error("DELETE /drafts/{id} - Failed to discard draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s", draftID)
	w.WriteHeader(http.StatusNoContent)
}
