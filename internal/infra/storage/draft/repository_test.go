package draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

func newStoredDraft(t *testing.T, r *Repository) *domain.BookingDraft {
	t.Helper()
	d, err := r.Create(context.Background(), domain.NewBookingDraft(time.Now()))
	require.NoError(t, err)
	return d
}

func TestRepository_CreateAndGet(t *testing.T) {
	r := NewRepository(time.Hour)
	d := newStoredDraft(t, r)

	got, err := r.GetByID(context.Background(), d.ID)

	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, domain.StepSelectService, got.Step)
	assert.Equal(t, 1, r.Count())
}

func TestRepository_GetByID_ReturnsCopy(t *testing.T) {
	r := NewRepository(time.Hour)
	d := newStoredDraft(t, r)

	got, err := r.GetByID(context.Background(), d.ID)
	require.NoError(t, err)

	// Мутация копии не должна протекать в хранилище
	got.Name = "Mallory"

	again, err := r.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Name)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	r := NewRepository(time.Hour)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_Update_AppliesMutation(t *testing.T) {
	r := NewRepository(time.Hour)
	d := newStoredDraft(t, r)

	svc := domain.Service{ID: "maintenance", Title: "The Daily", Price: 150}
	updated, err := r.Update(context.Background(), d.ID, func(d *domain.BookingDraft) error {
		return d.SelectService(svc, time.Now())
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectSchedule, updated.Step)
	assert.Equal(t, 150, updated.Price)

	stored, err := r.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectSchedule, stored.Step)
}

func TestRepository_Update_ErrorLeavesDraftUnchanged(t *testing.T) {
	r := NewRepository(time.Hour)
	d := newStoredDraft(t, r)

	boom := errors.New("boom")
	_, err := r.Update(context.Background(), d.ID, func(d *domain.BookingDraft) error {
		d.Name = "partial"
		return boom
	})

	require.ErrorIs(t, err, boom)

	stored, err := r.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Name)
}

func TestRepository_Update_NotFound(t *testing.T) {
	r := NewRepository(time.Hour)

	_, err := r.Update(context.Background(), uuid.New(), func(d *domain.BookingDraft) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_Delete_IsIdempotent(t *testing.T) {
	r := NewRepository(time.Hour)
	d := newStoredDraft(t, r)

	require.NoError(t, r.Delete(context.Background(), d.ID))
	require.NoError(t, r.Delete(context.Background(), d.ID))

	_, err := r.GetByID(context.Background(), d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Equal(t, 0, r.Count())
}

func TestRepository_ExpiredDraftIsGone(t *testing.T) {
	r := NewRepository(50 * time.Millisecond)

	stale := domain.NewBookingDraft(time.Now().Add(-time.Minute))
	d, err := r.Create(context.Background(), stale)
	require.NoError(t, err)

	_, err = r.GetByID(context.Background(), d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = r.Update(context.Background(), d.ID, func(d *domain.BookingDraft) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_SweepRemovesOnlyExpired(t *testing.T) {
	r := NewRepository(time.Hour)

	fresh := newStoredDraft(t, r)

	stale := domain.NewBookingDraft(time.Now().Add(-2 * time.Hour))
	_, err := r.Create(context.Background(), stale)
	require.NoError(t, err)

	active := r.sweep(time.Now())

	assert.Equal(t, 1, active)
	_, err = r.GetByID(context.Background(), fresh.ID)
	assert.NoError(t, err)
	_, err = r.GetByID(context.Background(), stale.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_Update_SubmitFlagIsAtomic(t *testing.T) {
	r := NewRepository(time.Hour)

	d := domain.NewBookingDraft(time.Now())
	require.NoError(t, d.SelectService(domain.Service{ID: "s", Title: "S", Price: 1}, time.Now()))
	require.NoError(t, d.SelectTime("10:00 AM", time.Now()))
	require.NoError(t, d.AdvanceToDetails(time.Now()))
	require.NoError(t, d.SetContact("Alice", "alice@example.com", "", time.Now()))

	stored, err := r.Create(context.Background(), d)
	require.NoError(t, err)

	begin := func() error {
		_, err := r.Update(context.Background(), stored.ID, func(d *domain.BookingDraft) error {
			return d.BeginSubmit(time.Now())
		})
		return err
	}

	require.NoError(t, begin())
	assert.ErrorIs(t, begin(), domain.ErrSubmissionInFlight)
}
