// Package timegrid models the fixed day-by-time grid the schedule view
// renders into: 15-minute slots between 07:00 and 22:00 across the six
// rendered weekdays.
package timegrid

import (
	"errors"
	"fmt"

	"github.com/nmoliner/eduquery/internal/catalog"
)

// Grid errors.
var (
	// ErrNonPositiveDuration marks a meeting whose end does not come
	// after its start. Such blocks are data errors and are excluded
	// from the grid rather than coerced.
	ErrNonPositiveDuration = errors.New("meeting end is not after start")
)

const (
	// SlotMinutes is the grid tick in minutes.
	SlotMinutes = 15
	// DayStartMinutes is 07:00 in minutes since midnight.
	DayStartMinutes = 7 * 60
	// DayEndMinutes is 22:00 in minutes since midnight (exclusive).
	DayEndMinutes = 22 * 60
	// SlotsPerDay is the number of ticks between 07:00 and 22:00.
	SlotsPerDay = (DayEndMinutes - DayStartMinutes) / SlotMinutes
)

// Days are the six rendered weekdays, in column order. Sunday is not
// rendered; meetings on it stay off the grid.
var Days = [6]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayIndex returns the column index for a day-of-week name, or false
// if the day is not one of the six rendered days.
func DayIndex(day string) (int, bool) {
	for i, d := range Days {
		if d == day {
			return i, true
		}
	}
	return 0, false
}

// Slot is one 15-minute tick of the rendered day. Value is the
// canonical 24-hour key ("07:15"); Display is the human label
// ("7:15 AM").
type Slot struct {
	Value   string
	Display string
}

// StartMinutes returns the slot's start in minutes since midnight.
// Slots are generated from canonical keys, so parsing cannot fail.
func (s Slot) StartMinutes() int {
	mins, _ := catalog.ToMinutes(s.Value)
	return mins
}

// GenerateSlots produces the 60 slots of a rendered day, 07:00 through
// 21:45. Deterministic and pure; callers may regenerate freely since
// the grid is small and fixed-size.
func GenerateSlots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for mins := DayStartMinutes; mins < DayEndMinutes; mins += SlotMinutes {
		value := catalog.FromMinutes(mins)
		slots = append(slots, Slot{
			Value:   value,
			Display: catalog.DisplayClock(value),
		})
	}
	return slots
}

// SlotStartMinutes returns the start of slot index i in minutes since
// midnight. No bounds check; callers index within [0, SlotsPerDay).
func SlotStartMinutes(i int) int {
	return DayStartMinutes + i*SlotMinutes
}

// SlotIndexForMinutes returns the slot index whose start equals the
// given minutes-since-midnight value, or false when the time is
// outside the display window or off a tick boundary.
func SlotIndexForMinutes(mins int) (int, bool) {
	if mins < DayStartMinutes || mins >= DayEndMinutes {
		return 0, false
	}
	offset := mins - DayStartMinutes
	if offset%SlotMinutes != 0 {
		return 0, false
	}
	return offset / SlotMinutes, true
}

// Geometry is the resolved extent of a meeting in minutes.
type Geometry struct {
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int
}

// BlockGeometry resolves a meeting's times into minute geometry.
// Returns ErrClockFormat-wrapped errors for unparseable times and
// ErrNonPositiveDuration when the interval is empty or inverted.
func BlockGeometry(m catalog.Meeting) (Geometry, error) {
	start, err := catalog.ToMinutes(catalog.TruncateClock(m.StartTime))
	if err != nil {
		return Geometry{}, fmt.Errorf("start time: %w", err)
	}
	end, err := catalog.ToMinutes(catalog.TruncateClock(m.EndTime))
	if err != nil {
		return Geometry{}, fmt.Errorf("end time: %w", err)
	}
	if end <= start {
		return Geometry{}, fmt.Errorf("%w: %s-%s", ErrNonPositiveDuration, m.StartTime, m.EndTime)
	}
	return Geometry{
		StartMinutes:    start,
		EndMinutes:      end,
		DurationMinutes: end - start,
	}, nil
}

// Occupies reports whether a block with the given geometry covers the
// slot starting at slotStart. The test is closed-open: a meeting
// ending exactly on a slot boundary does not occupy that slot.
func (g Geometry) Occupies(slotStart int) bool {
	return slotStart >= g.StartMinutes && slotStart < g.EndMinutes
}
