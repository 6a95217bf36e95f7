package catalog

import (
	"fmt"

	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	"github.com/apexshine/APX-ConfiguratorService/pkg/types"
)

// Catalog enumerates the offered services and the fixed ordered set of time
// slot labels. It is built once at process start and never mutated afterwards.
type Catalog struct {
	services []domain.Service
	byID     map[string]domain.Service
	slots    []domain.TimeSlot
}

// New builds a catalog from the given entries, preserving order. Entry IDs
// must be unique, prices positive and slot labels well-formed.
func New(services []domain.Service, slots []domain.TimeSlot) (*Catalog, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("catalog: at least one service is required")
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("catalog: at least one time slot is required")
	}

	byID := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		if svc.ID == "" {
			return nil, fmt.Errorf("catalog: service with empty id")
		}
		if svc.Price <= 0 {
			return nil, fmt.Errorf("catalog: service %s has non-positive price %d", svc.ID, svc.Price)
		}
		if _, ok := byID[svc.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate service id %s", svc.ID)
		}
		byID[svc.ID] = svc
	}

	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}

	return &Catalog{
		services: append([]domain.Service(nil), services...),
		byID:     byID,
		slots:    append([]domain.TimeSlot(nil), slots...),
	}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultServices(), defaultTimeSlots())
	if err != nil {
		// Встроенный каталог валиден по построению
		panic(err)
	}
	return c
}

// Services returns the catalog entries in display order.
func (c *Catalog) Services() []domain.Service {
	return append([]domain.Service(nil), c.services...)
}

// ServiceByID looks up a catalog entry by its symbolic key.
func (c *Catalog) ServiceByID(id string) (domain.Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// TimeSlots returns the fixed ordered slot labels.
func (c *Catalog) TimeSlots() []domain.TimeSlot {
	return append([]domain.TimeSlot(nil), c.slots...)
}

// HasTimeSlot reports whether the label belongs to the catalog set.
func (c *Catalog) HasTimeSlot(slot domain.TimeSlot) bool {
	for _, s := range c.slots {
		if s == slot {
			return true
		}
	}
	return false
}

func defaultServices() []domain.Service {
	return []domain.Service{
		{
			ID:            "maintenance",
			Title:         "The Daily",
			Price:         150,
			DurationLabel: "1.5h",
			Description:   "Wash & Sealant",
		},
		{
			ID:            "correction",
			Title:         "Correction",
			Price:         450,
			DurationLabel: "6h",
			Description:   "Polish & Shine",
		},
		{
			ID:            "ceramic",
			Title:         "Ceramic Pro",
			Price:         890,
			DurationLabel: "1 Day",
			Description:   "5-Year Coating",
		},
	}
}

func defaultTimeSlots() []domain.TimeSlot {
	labels := []string{
		"09:00 AM", "10:00 AM", "11:00 AM",
		"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	}
	slots := make([]domain.TimeSlot, 0, len(labels))
	for _, l := range labels {
		slots = append(slots, types.SlotTime(l))
	}
	return slots
}
