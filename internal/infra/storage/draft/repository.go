package draft

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

// Repository хранилище черновиков бронирования в памяти процесса.
//
// Черновик живёт только в активной сессии: он не переживает рестарт процесса
// и удаляется при явном уходе пользователя, при успешной отправке на оплату
// или по истечении TTL. Долговременное состояние брони ведут внешние сервисы.
type Repository struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*domain.BookingDraft
	ttl    time.Duration
}

// NewRepository создает хранилище черновиков с заданным TTL сессии
func NewRepository(ttl time.Duration) *Repository {
	return &Repository{
		drafts: make(map[uuid.UUID]*domain.BookingDraft),
		ttl:    ttl,
	}
}

// Create сохраняет новый черновик
func (r *Repository) Create(_ context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *d
	r.drafts[d.ID] = &cp

	out := cp
	return &out, nil
}

// GetByID возвращает копию черновика по идентификатору сессии
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok || r.expired(d, time.Now()) {
		delete(r.drafts, id)
		return nil, ErrDraftNotFound
	}

	cp := *d
	return &cp, nil
}

// Update применяет fn к черновику под блокировкой хранилища и возвращает
// копию результата. Если fn возвращает ошибку, черновик остаётся без
// изменений. Так переходы состояния (включая проверку submitting-флага)
// выполняются атомарно.
func (r *Repository) Update(_ context.Context, id uuid.UUID, fn func(*domain.BookingDraft) error) (*domain.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok || r.expired(d, time.Now()) {
		delete(r.drafts, id)
		return nil, ErrDraftNotFound
	}

	cp := *d
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.drafts[id] = &cp

	out := cp
	return &out, nil
}

// Delete удаляет черновик. Удаление несуществующего черновика не ошибка:
// уход со страницы и истечение TTL могут гоняться друг с другом.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, id)
	return nil
}

// Count возвращает число активных черновиков
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

// RunJanitor периодически удаляет истёкшие черновики до закрытия stop.
// onSweep (опционально) получает число активных черновиков после очистки.
func (r *Repository) RunJanitor(interval time.Duration, stop <-chan struct{}, onSweep func(active int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			active := r.sweep(time.Now())
			if onSweep != nil {
				onSweep(active)
			}
		}
	}
}

func (r *Repository) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.drafts {
		if r.expired(d, now) {
			delete(r.drafts, id)
		}
	}
	return len(r.drafts)
}

func (r *Repository) expired(d *domain.BookingDraft, now time.Time) bool {
	return now.Sub(d.UpdatedAt) > r.ttl
}
