package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexshine/APX-ConfiguratorService/pkg/types"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func testService() Service {
	return Service{
		ID:            "correction",
		Title:         "Correction",
		Price:         450,
		DurationLabel: "6h",
		Description:   "Polish & Shine",
	}
}

func draftAtSchedule(t *testing.T) *BookingDraft {
	t.Helper()
	d := NewBookingDraft(testNow)
	require.NoError(t, d.SelectService(testService(), testNow))
	return d
}

func draftAtDetails(t *testing.T) *BookingDraft {
	t.Helper()
	d := draftAtSchedule(t)
	require.NoError(t, d.SelectTime(types.SlotTime("10:00 AM"), testNow))
	require.NoError(t, d.AdvanceToDetails(testNow))
	return d
}

func TestNewBookingDraft_StartsAtServiceSelectionWithToday(t *testing.T) {
	d := NewBookingDraft(testNow)

	assert.Equal(t, StepSelectService, d.Step)
	assert.False(t, d.Submitting)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", d.ID.String())

	// Дата по умолчанию сегодняшняя, обнулённая до начала суток
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d.Date)
	assert.True(t, d.Time.IsZero())
	assert.False(t, d.HasTimeSelected())
	assert.False(t, d.HasContactDetails())
}

func TestBookingDraft_SelectService_CopiesCatalogFields(t *testing.T) {
	d := NewBookingDraft(testNow)

	err := d.SelectService(testService(), testNow)

	require.NoError(t, err)
	assert.Equal(t, StepSelectSchedule, d.Step)
	assert.Equal(t, "correction", d.ServiceID)
	assert.Equal(t, "Correction", d.ServiceName)
	assert.Equal(t, 450, d.Price)
}

func TestBookingDraft_SelectService_ReselectionIsIdempotent(t *testing.T) {
	d := NewBookingDraft(testNow)
	require.NoError(t, d.SelectService(testService(), testNow))
	first := *d

	err := d.SelectService(testService(), testNow)

	require.NoError(t, err)
	assert.Equal(t, first, *d)
}

func TestBookingDraft_SelectService_SwitchReplacesAllThreeFields(t *testing.T) {
	d := NewBookingDraft(testNow)
	require.NoError(t, d.SelectService(testService(), testNow))

	other := Service{ID: "ceramic", Title: "Ceramic Pro", Price: 890}
	require.NoError(t, d.SelectService(other, testNow))

	assert.Equal(t, "ceramic", d.ServiceID)
	assert.Equal(t, "Ceramic Pro", d.ServiceName)
	assert.Equal(t, 890, d.Price)
}

func TestBookingDraft_SelectService_RejectedWhileSubmitting(t *testing.T) {
	d := draftAtDetails(t)
	require.NoError(t, d.SetContact("Alice", "alice@example.com", "", testNow))
	require.NoError(t, d.BeginSubmit(testNow))

	err := d.SelectService(testService(), testNow)

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestBookingDraft_SelectDate_NormalizesToStartOfDay(t *testing.T) {
	d := draftAtSchedule(t)

	picked := time.Date(2026, 3, 15, 18, 45, 12, 0, time.UTC)
	require.NoError(t, d.SelectDate(picked, testNow))

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d.Date)
}

func TestBookingDraft_SelectDate_RejectedOutsideScheduleStep(t *testing.T) {
	d := NewBookingDraft(testNow)

	err := d.SelectDate(testNow, testNow)

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestBookingDraft_SelectTime_OverwritesPreviousSlot(t *testing.T) {
	d := draftAtSchedule(t)

	require.NoError(t, d.SelectTime(types.SlotTime("09:00 AM"), testNow))
	require.NoError(t, d.SelectTime(types.SlotTime("02:00 PM"), testNow))

	assert.Equal(t, "02:00 PM", d.Time.String())
	assert.True(t, d.HasTimeSelected())
}

func TestBookingDraft_AdvanceToDetails_RequiresTimeSlot(t *testing.T) {
	d := draftAtSchedule(t)

	err := d.AdvanceToDetails(testNow)

	assert.ErrorIs(t, err, ErrTimeNotSelected)
	assert.Equal(t, StepSelectSchedule, d.Step)
	assert.False(t, d.CanAdvanceToDetails())
}

func TestBookingDraft_AdvanceToDetails_WithTimeSelected(t *testing.T) {
	d := draftAtSchedule(t)
	require.NoError(t, d.SelectTime(types.SlotTime("10:00 AM"), testNow))

	require.True(t, d.CanAdvanceToDetails())
	require.NoError(t, d.AdvanceToDetails(testNow))

	assert.Equal(t, StepEnterDetails, d.Step)
}

func TestBookingDraft_Back_PreservesSelections(t *testing.T) {
	d := draftAtDetails(t)
	require.NoError(t, d.SetContact("Alice", "alice@example.com", "+1555", testNow))

	require.NoError(t, d.Back(testNow))
	assert.Equal(t, StepSelectSchedule, d.Step)

	require.NoError(t, d.Back(testNow))
	assert.Equal(t, StepSelectService, d.Step)

	// Обратные переходы ничего не очищают
	assert.Equal(t, "correction", d.ServiceID)
	assert.Equal(t, 450, d.Price)
	assert.Equal(t, "10:00 AM", d.Time.String())
	assert.Equal(t, "Alice", d.Name)
	assert.Equal(t, "alice@example.com", d.Email)
}

func TestBookingDraft_Back_RejectedFromFirstStep(t *testing.T) {
	d := NewBookingDraft(testNow)

	err := d.Back(testNow)

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestBookingDraft_BeginSubmit_Guards(t *testing.T) {
	t.Run("rejected without contact details", func(t *testing.T) {
		d := draftAtDetails(t)

		err := d.BeginSubmit(testNow)

		assert.ErrorIs(t, err, ErrContactDetailsMissing)
		assert.False(t, d.Submitting)
	})

	t.Run("rejected with name only", func(t *testing.T) {
		d := draftAtDetails(t)
		require.NoError(t, d.SetContact("Alice", "", "", testNow))

		err := d.BeginSubmit(testNow)

		assert.ErrorIs(t, err, ErrContactDetailsMissing)
	})

	t.Run("phone is optional", func(t *testing.T) {
		d := draftAtDetails(t)
		require.NoError(t, d.SetContact("Alice", "alice@example.com", "", testNow))

		require.True(t, d.CanSubmit())
		assert.NoError(t, d.BeginSubmit(testNow))
	})

	t.Run("rejected outside details step", func(t *testing.T) {
		d := draftAtSchedule(t)

		err := d.BeginSubmit(testNow)

		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("rejected while already in flight", func(t *testing.T) {
		d := draftAtDetails(t)
		require.NoError(t, d.SetContact("Alice", "alice@example.com", "", testNow))
		require.NoError(t, d.BeginSubmit(testNow))

		err := d.BeginSubmit(testNow)

		assert.ErrorIs(t, err, ErrSubmissionInFlight)
	})
}

func TestBookingDraft_CompleteSubmit_IsTerminal(t *testing.T) {
	d := draftAtDetails(t)
	require.NoError(t, d.SetContact("Alice", "alice@example.com", "", testNow))
	require.NoError(t, d.BeginSubmit(testNow))

	d.CompleteSubmit(testNow)

	assert.Equal(t, StepRedirected, d.Step)
	assert.False(t, d.Submitting)
	assert.True(t, d.IsTerminal())
	assert.False(t, d.CanSelectService())
	assert.ErrorIs(t, d.Back(testNow), ErrIllegalTransition)
}

func TestBookingDraft_FailSubmit_ReturnsToDetailsStep(t *testing.T) {
	d := draftAtDetails(t)
	require.NoError(t, d.SetContact("Alice", "alice@example.com", "", testNow))
	require.NoError(t, d.BeginSubmit(testNow))

	d.FailSubmit(testNow)

	assert.Equal(t, StepEnterDetails, d.Step)
	assert.False(t, d.Submitting)
	// После отказа можно отправить повторно
	assert.True(t, d.CanSubmit())
}
