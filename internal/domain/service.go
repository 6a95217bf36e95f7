package domain

import "github.com/apexshine/APX-ConfiguratorService/pkg/types"

// Service represents an immutable catalog entry offered for booking.
// Entries are defined at process start and never mutated afterwards.
type Service struct {
	ID            string
	Title         string
	Price         int // currency units, positive
	DurationLabel string
	Description   string
}

// TimeSlot is an immutable slot label from the fixed ordered catalog set.
// No capacity or availability state is modeled for it.
type TimeSlot = types.SlotTime
