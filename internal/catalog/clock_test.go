package catalog

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		want    int
		wantErr bool
	}{
		{name: "midnight", clock: "00:00", want: 0},
		{name: "morning", clock: "07:00", want: 420},
		{name: "single digit hour", clock: "9:30", want: 570},
		{name: "end of day", clock: "23:59", want: 1439},
		{name: "missing colon", clock: "0900", wantErr: true},
		{name: "too many fields", clock: "09:00:00", wantErr: true},
		{name: "hour out of range", clock: "24:00", wantErr: true},
		{name: "minute out of range", clock: "10:60", wantErr: true},
		{name: "non-numeric", clock: "ab:cd", wantErr: true},
		{name: "empty", clock: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ToMinutes(%q) = %d, want error", tt.clock, got)
				}
				if !errors.Is(err, ErrClockFormat) {
					t.Errorf("error = %v, want ErrClockFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToMinutes(%q) error: %v", tt.clock, err)
			}
			if got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "00:00"},
		{420, "07:00"},
		{585, "09:45"},
		{1439, "23:59"},
		{-10, "00:00"},
		{2000, "23:59"},
	}

	for _, tt := range tests {
		if got := FromMinutes(tt.mins); got != tt.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tt.mins, got, tt.want)
		}
	}
}

func TestTruncateClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00"},
		{"09:00", "09:00"},
		{"9:00", "9:00"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TruncateClock(tt.in); got != tt.want {
			t.Errorf("TruncateClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"07:00", "7:00 AM"},
		{"11:45", "11:45 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"21:45", "9:45 PM"},
		{"bogus", "bogus"},
	}

	for _, tt := range tests {
		if got := DisplayClock(tt.in); got != tt.want {
			t.Errorf("DisplayClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
