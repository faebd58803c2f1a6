package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrClockFormat is returned when a wall-clock string cannot be parsed.
var ErrClockFormat = errors.New("malformed clock time")

// ToMinutes converts "HH:MM" to minutes since midnight.
// The input must have exactly two colon-delimited numeric fields with
// hour in [0,23] and minute in [0,59].
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clock)
	}
	return hour*60 + minute, nil
}

// FromMinutes converts minutes since midnight to "HH:MM", clamping to
// the valid day range.
func FromMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TruncateClock reduces "HH:MM:SS" to "HH:MM". The gateway returns
// second-precision times; the grid works in minutes.
func TruncateClock(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

// DisplayClock converts a 24-hour "HH:MM" string to a 12-hour label
// like "7:00 AM". Invalid input is returned unchanged.
func DisplayClock(clock string) string {
	mins, err := ToMinutes(clock)
	if err != nil {
		return clock
	}
	hour := mins / 60
	minute := mins % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
