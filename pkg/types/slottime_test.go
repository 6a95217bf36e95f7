package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotTimeFromString_Valid(t *testing.T) {
	st, err := NewSlotTimeFromString("09:00 AM")

	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", st.String())
	assert.False(t, st.IsZero())
}

func TestNewSlotTimeFromString_Invalid(t *testing.T) {
	cases := []string{"", "9:00", "13:00 PM", "09:00", "morning"}

	for _, c := range cases {
		_, err := NewSlotTimeFromString(c)
		assert.Error(t, err, "label %q", c)
	}
}

func TestNewSlotTime_FormatsFromTime(t *testing.T) {
	st := NewSlotTime(time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC))

	assert.Equal(t, "02:00 PM", st.String())
}

func TestSlotTime_Before(t *testing.T) {
	morning := SlotTime("09:00 AM")
	afternoon := SlotTime("02:00 PM")

	assert.True(t, morning.Before(afternoon))
	assert.False(t, afternoon.Before(morning))
	assert.False(t, morning.Before(morning))
}

func TestSlotTime_IsZero(t *testing.T) {
	assert.True(t, SlotTime("").IsZero())
	assert.False(t, SlotTime("09:00 AM").IsZero())
}
