package configurator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	draftRepo "github.com/apexshine/APX-ConfiguratorService/internal/infra/storage/draft"
	"github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"
)

// Service сервис конфигуратора бронирования: управляет черновиками и
// переходами между шагами. Нарушение гварда оставляет черновик без изменений
// и возвращает ошибку; наверху это превращается в неактивный контрол, а не
// в фатальный сбой.
type Service struct {
	store        DraftStore
	catalog      Catalog
	schedule     ScheduleUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигуратора
func NewService(store DraftStore, catalog Catalog, schedule ScheduleUseCase, logger Logger) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateDraft создает пустой черновик на шаге выбора услуги.
// Дата по умолчанию сегодняшняя.
func (s *Service) CreateDraft(ctx context.Context) (*models.DraftView, error) {
	d := domain.NewBookingDraft(s.timeProvider.Now())

	created, err := s.store.Create(ctx, d)
	if err != nil {
		s.logger.Error("CreateDraft: store error: %v", err)
		return nil, fmt.Errorf("%w: CreateDraft - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDraft: created draft id=%s", created.ID)
	return models.FromDomainDraft(created), nil
}

// GetDraft возвращает текущее состояние черновика
func (s *Service) GetDraft(ctx context.Context, id uuid.UUID) (*models.DraftView, error) {
	d, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("GetDraft: draft id=%s not found", id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("GetDraft: store error for draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetDraft - store error: %v", ErrInternal, err)
	}

	return models.FromDomainDraft(d), nil
}

// DiscardDraft удаляет черновик (уход пользователя со страницы)
func (s *Service) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("DiscardDraft: store error for draft id=%s: %v", id, err)
		return fmt.Errorf("%w: DiscardDraft - store error: %v", ErrInternal, err)
	}

	s.logger.Info("DiscardDraft: discarded draft id=%s", id)
	return nil
}

// SelectService выбирает услугу из каталога: id, название и цена копируются
// в черновик одним обновлением, шаг переходит к выбору расписания. Цена
// фиксируется на момент выбора и дальше из каталога не перечитывается.
func (s *Service) SelectService(ctx context.Context, id uuid.UUID, serviceID string) (*models.DraftView, error) {
	svc, ok := s.catalog.ServiceByID(serviceID)
	if !ok {
		s.logger.Warn("SelectService: service id=%s not found in catalog", serviceID)
		return nil, ErrServiceNotFound
	}

	d, err := s.store.Update(ctx, id, func(d *domain.BookingDraft) error {
		return d.SelectService(svc, s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("SelectService", id, err)
	}

	s.logger.Info("SelectService: draft=%s service=%s price=%d", id, svc.ID, svc.Price)
	return models.FromDomainDraft(d), nil
}

// SelectSchedule перезаписывает дату и/или время черновика. Дата обязана
// входить в актуальное 14-дневное окно, время в каталожный набор меток.
// Дата и время между собой не связаны, это независимые перезаписи.
func (s *Service) SelectSchedule(ctx context.Context, id uuid.UUID, req *models.SelectScheduleRequest) (*models.DraftView, error) {
	if req.Date != nil {
		window := s.schedule.Execute()
		if !window.ContainsDate(*req.Date) {
			s.logger.Warn("SelectSchedule: draft=%s date=%s outside booking window",
				id, req.Date.Format(domain.DateFormat))
			return nil, ErrDateOutOfWindow
		}
	}

	if req.Time != nil && !s.catalog.HasTimeSlot(*req.Time) {
		s.logger.Warn("SelectSchedule: draft=%s unknown time slot %q", id, req.Time.String())
		return nil, ErrInvalidTimeSlot
	}

	d, err := s.store.Update(ctx, id, func(d *domain.BookingDraft) error {
		now := s.timeProvider.Now()
		if req.Date != nil {
			if err := d.SelectDate(*req.Date, now); err != nil {
				return err
			}
		}
		if req.Time != nil {
			if err := d.SelectTime(*req.Time, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("SelectSchedule", id, err)
	}

	s.logger.Info("SelectSchedule: draft=%s date=%s time=%s",
		id, d.Date.Format(domain.DateFormat), d.Time)
	return models.FromDomainDraft(d), nil
}

// AdvanceToDetails переходит от расписания к вводу контактных данных.
// Гвард: время должно быть выбрано.
func (s *Service) AdvanceToDetails(ctx context.Context, id uuid.UUID) (*models.DraftView, error) {
	d, err := s.store.Update(ctx, id, func(d *domain.BookingDraft) error {
		return d.AdvanceToDetails(s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("AdvanceToDetails", id, err)
	}

	s.logger.Info("AdvanceToDetails: draft=%s advanced to %s", id, d.Step)
	return models.FromDomainDraft(d), nil
}

// SetDetails перезаписывает контактные поля на шаге ввода данных
func (s *Service) SetDetails(ctx context.Context, id uuid.UUID, req *models.ContactRequest) (*models.DraftView, error) {
	d, err := s.store.Update(ctx, id, func(d *domain.BookingDraft) error {
		return d.SetContact(req.Name, req.Email, req.Phone, s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("SetDetails", id, err)
	}

	s.logger.Info("SetDetails: draft=%s contact updated", id)
	return models.FromDomainDraft(d), nil
}

// Back выполняет обратный переход. Обратные переходы не очищают сделанный
// выбор: сервис, дата, время и контакты сохраняются.
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*models.DraftView, error) {
	d, err := s.store.Update(ctx, id, func(d *domain.BookingDraft) error {
		return d.Back(s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("Back", id, err)
	}

	s.logger.Info("Back: draft=%s returned to %s", id, d.Step)
	return models.FromDomainDraft(d), nil
}

func (s *Service) mapUpdateError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, draftRepo.ErrDraftNotFound):
		s.logger.Warn("%s: draft id=%s not found", op, id)
		return ErrDraftNotFound
	case errors.Is(err, domain.ErrTimeNotSelected):
		s.logger.Warn("%s: draft id=%s time not selected", op, id)
		return ErrTimeNotSelected
	case errors.Is(err, domain.ErrIllegalTransition):
		s.logger.Warn("%s: draft id=%s illegal transition", op, id)
		return ErrIllegalTransition
	default:
		s.logger.Error("%s: store error for draft id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
}
