package select_schedule

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
	msgInvalidDateOrTime  = "invalid date or time format"
	msgDraftNotFound      = "draft not found"
	msgDateOutOfWindow    = "date is outside the booking window"
	msgInvalidTimeSlot    = "unknown time slot"
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

// Handle POST /api/v1/drafts/{draftId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/schedule - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var req SelectScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	view, err := h.service.SelectSchedule(r.Context(), draftID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, configurator.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/schedule - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, configurator.ErrDateOutOfWindow):
			h.logger.Warn("POST /drafts/{id}/schedule - Date out of window: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, configurator.ErrInvalidTimeSlot):
			h.logger.Warn("POST /drafts/{id}/schedule - Invalid time slot: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, configurator.ErrIllegalTransition):
			h.logger.Warn("POST /drafts/{id}/schedule - Illegal transition: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("POST /drafts/{id}/schedule - Failed to update schedule: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/schedule - Schedule updated: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDraftView(view))
}
