package cancel_reservation

import cancelUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/cancel_reservation"

// CancelReservationRequest HTTP request model.
// Confirmed: явное подтверждение деструктивного действия.
type CancelReservationRequest struct {
	Token     string `json:"token"`
	Confirmed bool   `json:"confirmed"`
}

// StatusResponse терминальное состояние потока отмены
type StatusResponse struct {
	Message string `json:"message"`
	Outcome string `json:"outcome"` // positive | negative
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelUC.Response) *StatusResponse {
	return &StatusResponse{
		Message: resp.Message,
		Outcome: string(resp.Outcome),
	}
}
