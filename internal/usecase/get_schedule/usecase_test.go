package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexshine/APX-ConfiguratorService/internal/catalog"
	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(catalog.Default(), noopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_WindowStartsTodayAndSpans14Days(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp := uc.Execute()

	require.Len(t, resp.Dates, domain.ScheduleWindowDays)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), resp.Dates[0])
	assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), resp.Dates[13])

	// Даты последовательные, без пропусков
	for i := 1; i < len(resp.Dates); i++ {
		assert.Equal(t, resp.Dates[i-1].AddDate(0, 0, 1), resp.Dates[i])
	}
}

func TestExecute_WindowCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp := uc.Execute()

	require.Len(t, resp.Dates, 14)
	assert.Equal(t, time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC), resp.Dates[13])
}

func TestExecute_WindowIsRecomputedPerCall(t *testing.T) {
	clock := &fixedTime{now: time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)}
	uc := NewUseCase(catalog.Default(), noopLogger{})
	uc.timeProvider = clock

	first := uc.Execute()

	// "Сегодня" сместилось через полночь
	clock.now = clock.now.Add(time.Hour)
	second := uc.Execute()

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), first.Dates[0])
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), second.Dates[0])
}

func TestExecute_SlotsComeFromCatalog(t *testing.T) {
	uc := newTestUseCase(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	resp := uc.Execute()

	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "09:00 AM", resp.Slots[0].String())
	assert.Equal(t, "04:00 PM", resp.Slots[6].String())
}

func TestResponse_ContainsDate(t *testing.T) {
	uc := newTestUseCase(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	resp := uc.Execute()

	// Время суток не влияет на принадлежность окну
	assert.True(t, resp.ContainsDate(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.True(t, resp.ContainsDate(time.Date(2026, 3, 23, 8, 0, 0, 0, time.UTC)))

	assert.False(t, resp.ContainsDate(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)))
	assert.False(t, resp.ContainsDate(time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)))
}
