package select_service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator"
)

const (
	msgInvalidDraftID     = "invalid draft id"
	msgInvalidRequestBody = "invalid request body"
	msgDraftNotFound      = "draft not found"
	msgServiceNotFound    = "service not found"
	msgIllegalTransition  = "action is not permitted at this step"
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

// Handle POST /api/v1/drafts/{draftId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/service - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SelectService(r.Context(), draftID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, configurator.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/service - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, configurator.ErrServiceNotFound):
			h.logger.Warn("POST /drafts/{id}/service - Service not found: draft_id=%s, service_id=%s",
				draftID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, configurator.ErrIllegalTransition):
			h.logger.Warn("POST /drafts/{id}/service - Illegal transition: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("POST /drafts/{id}/service - Failed to select service: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/service - Service selected: draft_id=%s, service_id=%s",
		draftID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDraftView(view))
}
