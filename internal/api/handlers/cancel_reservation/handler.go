package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/apexshine/APX-ConfiguratorService/internal/api/handlers"
	cancelUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgEmptyToken           = "token is required"
	msgConfirmationRequired = "explicit confirmation is required"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/cancel
//
// Ответ всегда терминальный: текст и вариант оформления, автоматического
// возврата к предыдущему виду нет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelUC.Request{
		Token:     req.Token,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelUC.ErrEmptyToken):
			h.logger.Warn("POST /reservations/cancel - Empty token")
			handlers.RespondBadRequest(w, msgEmptyToken)

		case errors.Is(err, cancelUC.ErrNotConfirmed):
			h.logger.Warn("POST /reservations/cancel - Not confirmed")
			handlers.RespondConflict(w, msgConfirmationRequired)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Outcome=%s", result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
