package submit_checkout

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
	submitUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/submit_checkout"
)

const (
	msgInvalidDraftID     = "invalid draft id"
	msgDraftNotFound      = "draft not found"
	msgSubmissionInFlight = "submission is already in progress"
	msgDetailsIncomplete  = "name and email are required"
	msgIllegalStep        = "draft is not ready for submission"
)

type Handler struct {
	useCase SubmitCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase SubmitCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
//
// Единственный успешный исход: адрес для редиректа; ответа с подтверждением
// внутри конфигуратора нет. Текст отказа сервиса уходит клиенту дословно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/submit - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitUC.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, submitUC.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitUC.ErrSubmissionInFlight):
			h.logger.Warn("POST /drafts/{id}/submit - Submission in flight: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, submitUC.ErrDetailsIncomplete):
			h.logger.Warn("POST /drafts/{id}/submit - Details incomplete: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgDetailsIncomplete)

		case errors.Is(err, submitUC.ErrIllegalStep):
			h.logger.Warn("POST /drafts/{id}/submit - Illegal step: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgIllegalStep)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	switch result.Status {
	case submitUC.StatusRedirect:
		h.logger.Info("POST /drafts/{id}/submit - Redirecting: draft_id=%s, url=%s",
			draftID, result.RedirectURL)
		handlers.RespondJSON(w, http.StatusOK, RedirectResponse{URL: result.RedirectURL})

	case submitUC.StatusRejected:
		h.logger.Warn("POST /drafts/{id}/submit - Rejected: draft_id=%s, message=%s",
			draftID, result.ErrorMessage)
		handlers.RespondError(w, http.StatusUnprocessableEntity, result.ErrorMessage)

	case submitUC.StatusUnavailable:
		h.logger.Error("POST /drafts/{id}/submit - Checkout unavailable: draft_id=%s", draftID)
		handlers.RespondError(w, http.StatusBadGateway, result.ErrorMessage)

	default:
		h.logger.Error("POST /drafts/{id}/submit - Unexpected status %q: draft_id=%s",
			result.Status, draftID)
		handlers.RespondInternalError(w)
	}
}
