package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var (
	// ErrInvalidSlot is returned when a slot does not start strictly before it ends
	ErrInvalidSlot = errors.New("slot start must be before slot end")

	// ErrInvalidGridConfig is returned for a grid configuration that cannot produce slots
	ErrInvalidGridConfig = errors.New("invalid slot grid configuration")
)

// TimeSlot is a reservation window within a single day.
// Times are day-relative wall-clock values; cross-midnight slots are not modeled.
type TimeSlot struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewTimeSlot creates a slot, requiring start < end
func NewTimeSlot(start, end types.TimeOfDay) (TimeSlot, error) {
	if !start.IsBefore(end) {
		return TimeSlot{}, fmt.Errorf("%w: %s-%s", ErrInvalidSlot, start, end)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// Overlaps reports whether the half-open intervals [Start, End) share an instant.
// Touching endpoints do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.IsBefore(other.End) && s.End.IsAfter(other.Start)
}

// Contains reports whether t lies within [Start, End], both ends inclusive
func (s TimeSlot) Contains(t types.TimeOfDay) bool {
	return !t.IsBefore(s.Start) && !t.IsAfter(s.End)
}

// Equal reports whether both bounds match
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// DurationMinutes returns the slot length in minutes
func (s TimeSlot) DurationMinutes() int {
	return s.End.Sub(s.Start)
}

func (s TimeSlot) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// SlotGridConfig describes the fixed daily grid of reservation slots.
//
// Bounds are expressed in UTC. The defaults 06:30-18:30 equal 10:30-22:30
// in the restaurants' local time.
type SlotGridConfig struct {
	Open            types.TimeOfDay // start of the first slot
	Close           types.TimeOfDay // nominal closing bound for slot starts
	DurationMinutes int
	GapMinutes      int
}

// DefaultSlotGridConfig returns the production grid: 90 minute slots with 15 minute gaps
func DefaultSlotGridConfig() SlotGridConfig {
	return SlotGridConfig{
		Open:            types.MustParseTimeOfDay(DefaultOpenTime),
		Close:           types.MustParseTimeOfDay(DefaultCloseTime),
		DurationMinutes: DefaultSlotDurationMinutes,
		GapMinutes:      DefaultSlotGapMinutes,
	}
}

// NewSlotGridConfig builds a grid configuration from HH:MM bounds
func NewSlotGridConfig(open, closing string, durationMinutes, gapMinutes int) (SlotGridConfig, error) {
	openTime, err := types.ParseTimeOfDay(open)
	if err != nil {
		return SlotGridConfig{}, fmt.Errorf("%w: open: %v", ErrInvalidGridConfig, err)
	}
	closeTime, err := types.ParseTimeOfDay(closing)
	if err != nil {
		return SlotGridConfig{}, fmt.Errorf("%w: close: %v", ErrInvalidGridConfig, err)
	}

	cfg := SlotGridConfig{
		Open:            openTime,
		Close:           closeTime,
		DurationMinutes: durationMinutes,
		GapMinutes:      gapMinutes,
	}
	if err := cfg.Validate(); err != nil {
		return SlotGridConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration produces a finite, non-empty grid
func (c SlotGridConfig) Validate() error {
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidGridConfig)
	}
	if c.GapMinutes < 0 {
		return fmt.Errorf("%w: gap must not be negative", ErrInvalidGridConfig)
	}
	if c.Close.IsBefore(c.Open) {
		return fmt.Errorf("%w: close %s is before open %s", ErrInvalidGridConfig, c.Close, c.Open)
	}
	if _, err := c.Open.AddMinutes(c.DurationMinutes); err != nil {
		return fmt.Errorf("%w: first slot crosses midnight", ErrInvalidGridConfig)
	}
	return nil
}

// StepMinutes is the distance between consecutive slot starts
func (c SlotGridConfig) StepMinutes() int {
	return c.DurationMinutes + c.GapMinutes
}

// Generate returns the day's slots in start order.
//
// Slots are emitted from Open every StepMinutes. Generation stops right after
// the first slot whose start lies past Close, so the grid always carries one
// slot beyond the nominal bound: with the defaults the last slot is 18:45-20:15.
// This differs from a plain "while start <= Close" loop: a start landing
// exactly on Close is not the last one, the loop takes one more step
// (Open 10:00, Close 12:00, step 60 yields 10:00, 11:00, 12:00 and 13:00).
// A slot that would end after midnight is never emitted.
//
// The result is a fresh slice on every call.
func (c SlotGridConfig) Generate() []TimeSlot {
	if c.Validate() != nil {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, c.Close.Sub(c.Open)/c.StepMinutes()+2)
	start := c.Open
	for {
		end, err := start.AddMinutes(c.DurationMinutes)
		if err != nil {
			break
		}
		slots = append(slots, TimeSlot{Start: start, End: end})

		if start.IsAfter(c.Close) {
			break
		}

		next, err := start.AddMinutes(c.StepMinutes())
		if err != nil {
			break
		}
		start = next
	}

	return slots
}

// IsGridSlot reports whether slot matches one of the generated slots exactly
func (c SlotGridConfig) IsGridSlot(slot TimeSlot) bool {
	for _, s := range c.Generate() {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
