package services

import (
	"errors"
	"fmt"
)

// SlotCount is the number of statistics shown at once
const SlotCount = 4

// ErrInvalidSlot is returned for a slot outside [0, SlotCount)
var ErrInvalidSlot = errors.New("invalid slot")

// Direction moves a slot to the next or previous metric
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// ParseDirection accepts "forward"/"next"/"right" and "backward"/"previous"/"left"
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward", "next", "right":
		return Forward, nil
	case "backward", "previous", "prev", "left":
		return Backward, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// SlotSelector tracks which metric each display slot shows.
// The four indexes are always distinct and within [0, MetricCount).
type SlotSelector struct {
	slots [SlotCount]int
}

// NewSlotSelector starts with the first four metrics on display
func NewSlotSelector() *SlotSelector {
	return &SlotSelector{slots: [SlotCount]int{0, 1, 2, 3}}
}

// Slots returns the metric index shown in each slot
func (s *SlotSelector) Slots() [SlotCount]int { return s.slots }

// Cycle moves slot one step in dir, skipping metrics already shown elsewhere
func (s *SlotSelector) Cycle(slot int, dir Direction) ([SlotCount]int, error) {
	if slot < 0 || slot >= SlotCount {
		return s.slots, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if dir != Forward && dir != Backward {
		return s.slots, fmt.Errorf("invalid direction %d", dir)
	}

	next := s.slots[slot]
	for {
		next = (next + int(dir) + MetricCount) % MetricCount
		if !s.heldByOther(slot, next) {
			break
		}
	}
	s.slots[slot] = next
	return s.slots, nil
}

func (s *SlotSelector) heldByOther(slot, metric int) bool {
	for i, m := range s.slots {
		if i != slot && m == metric {
			return true
		}
	}
	return false
}
