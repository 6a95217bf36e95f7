package cancel_reservation

import (
	"context"

	"github.com/apexshine/APX-ConfiguratorService/internal/integrations/cancellation"
)

// msgTransportFailure показывается, когда запрос на отмену не удалось выполнить
const msgTransportFailure = "Error processing cancellation"

// UseCase use case отмены резервации по токену
type UseCase struct {
	client CancellationClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CancellationClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет отмену: после явного подтверждения делает ровно один
// запрос во внешний сервис и классифицирует текст ответа. Токен здесь непрозрачный
// идентификатор, здесь он не проверяется и не разбирается; повторную отмену
// по тому же токену идемпотентно обрабатывает внешний сервис.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Token == "" {
		uc.logger.Warn("CancelReservation: empty token")
		return nil, ErrEmptyToken
	}

	// Деструктивное действие: без подтверждения исходящий запрос не выполняется
	if !req.Confirmed {
		uc.logger.Info("CancelReservation: token=%s not confirmed, no request issued", tokenPreview(req.Token))
		return nil, ErrNotConfirmed
	}

	uc.logger.Info("CancelReservation: cancelling token=%s", tokenPreview(req.Token))

	result, err := uc.client.Cancel(ctx, &cancellation.Request{Token: req.Token})
	if err != nil {
		// Транспортная ошибка: подставляем общий текст, вариант отрицательный
		uc.logger.Error("CancelReservation: transport failure for token=%s: %v", tokenPreview(req.Token), err)
		return &Response{
			Message: msgTransportFailure,
			Outcome: OutcomeNegative,
		}, nil
	}

	message := result.Text()
	if message == "" {
		message = msgTransportFailure
	}
	outcome := Classify(message)

	uc.logger.Info("CancelReservation: token=%s outcome=%s", tokenPreview(req.Token), outcome)
	return &Response{
		Message: message,
		Outcome: outcome,
	}, nil
}

// tokenPreview обрезает токен для логов: целиком он в логи не пишется
func tokenPreview(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
