package submit_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	draftRepo "github.com/apexshine/APX-ConfiguratorService/internal/infra/storage/draft"
	"github.com/apexshine/APX-ConfiguratorService/internal/integrations/checkout"
)

const (
	// msgFallback показывается, когда сервис не вернул ни url, ни error
	msgFallback = "Something went wrong"

	// msgTransportFailure показывается при транспортной ошибке; намеренно
	// отличается от серверных текстов
	msgTransportFailure = "Error initiating checkout"
)

// UseCase use case отправки черновика во внешний checkout-сервис
type UseCase struct {
	store        DraftStore
	client       CheckoutClient
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик выключен.
func NewUseCase(store DraftStore, client CheckoutClient, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		client:       client,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет отправку: проверяет гварды, делает ровно один исходящий
// запрос и интерпретирует результат.
//
// Submitting-флаг взводится атомарно в хранилище (повторная отправка того же
// черновика отклоняется, пока вызов в полёте) и гарантированно снимается на
// каждом пути выхода: успех удаляет черновик, любой отказ возвращает его на
// шаг ввода данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitCheckout: draft=%s", req.DraftID)

	// 1. Атомарный переход enter_details -> submitting
	d, err := uc.store.Update(ctx, req.DraftID, func(d *domain.BookingDraft) error {
		return d.BeginSubmit(uc.timeProvider.Now())
	})
	if err != nil {
		return nil, uc.mapGuardError(req, err)
	}

	// 2. Ровно один исходящий запрос. serviceId и цена не отправляются:
	// сумму списания checkout-сервис выводит сам.
	result, err := uc.client.Submit(ctx, &checkout.Request{
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
		Date:  d.Date,
		Time:  d.Time.String(),
	})
	if err != nil {
		// Транспортная ошибка: снимаем флаг, пользователь может повторить
		uc.logger.Error("SubmitCheckout: transport failure for draft=%s: %v", req.DraftID, err)
		uc.releaseDraft(ctx, req)
		uc.recordSubmission("transport_error")
		return &Response{
			Status:       StatusUnavailable,
			ErrorMessage: msgTransportFailure,
		}, nil
	}

	// 3. Успех: есть адрес для редиректа, управление уходит из конфигуратора
	if result.URL != "" {
		_, err = uc.store.Update(ctx, req.DraftID, func(d *domain.BookingDraft) error {
			d.CompleteSubmit(uc.timeProvider.Now())
			return nil
		})
		if err != nil && !errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Error("SubmitCheckout: failed to finalize draft=%s: %v", req.DraftID, err)
		}
		// Черновик отработал: на успешной отправке он удаляется
		if err := uc.store.Delete(ctx, req.DraftID); err != nil {
			uc.logger.Error("SubmitCheckout: failed to discard draft=%s: %v", req.DraftID, err)
		}

		uc.logger.Info("SubmitCheckout: draft=%s redirected to %s", req.DraftID, result.URL)
		uc.recordSubmission("redirect")
		return &Response{
			Status:      StatusRedirect,
			RedirectURL: result.URL,
		}, nil
	}

	// 4. Отказ сервиса: текст показывается дословно, либо общий fallback
	message := result.Error
	if message == "" {
		message = msgFallback
	}

	uc.logger.Warn("SubmitCheckout: draft=%s rejected: %s", req.DraftID, message)
	uc.releaseDraft(ctx, req)
	uc.recordSubmission("rejected")
	return &Response{
		Status:       StatusRejected,
		ErrorMessage: message,
	}, nil
}

// releaseDraft снимает submitting-флаг и возвращает черновик на шаг ввода данных
func (uc *UseCase) releaseDraft(ctx context.Context, req *Request) {
	_, err := uc.store.Update(ctx, req.DraftID, func(d *domain.BookingDraft) error {
		d.FailSubmit(uc.timeProvider.Now())
		return nil
	})
	if err != nil && !errors.Is(err, draftRepo.ErrDraftNotFound) {
		uc.logger.Error("SubmitCheckout: failed to release draft=%s: %v", req.DraftID, err)
	}
}

func (uc *UseCase) mapGuardError(req *Request, err error) error {
	switch {
	case errors.Is(err, draftRepo.ErrDraftNotFound):
		uc.logger.Warn("SubmitCheckout: draft=%s not found", req.DraftID)
		return ErrDraftNotFound
	case errors.Is(err, domain.ErrSubmissionInFlight):
		uc.logger.Warn("SubmitCheckout: draft=%s submission already in flight", req.DraftID)
		return ErrSubmissionInFlight
	case errors.Is(err, domain.ErrContactDetailsMissing):
		uc.logger.Warn("SubmitCheckout: draft=%s contact details incomplete", req.DraftID)
		return ErrDetailsIncomplete
	case errors.Is(err, domain.ErrIllegalTransition):
		uc.logger.Warn("SubmitCheckout: draft=%s is not at the details step", req.DraftID)
		return ErrIllegalStep
	default:
		uc.logger.Error("SubmitCheckout: unexpected store error for draft=%s: %v", req.DraftID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) recordSubmission(result string) {
	if uc.metrics != nil {
		uc.metrics.RecordSubmission(result)
	}
}
