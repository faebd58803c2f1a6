package ui

import (
	"testing"
	"unicode/utf8"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		maxValue float64
		width    int
		want     string
	}{
		{name: "half", value: 5, maxValue: 10, width: 4, want: "██░░"},
		{name: "full", value: 10, maxValue: 10, width: 4, want: "████"},
		{name: "empty", value: 0, maxValue: 10, width: 4, want: "░░░░"},
		{name: "zero max", value: 5, maxValue: 0, width: 4, want: "░░░░"},
		{name: "overflow clamps", value: 20, maxValue: 10, width: 4, want: "████"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bar(tt.value, tt.maxValue, tt.width); got != tt.want {
				t.Errorf("bar(%v, %v, %d) = %q, want %q", tt.value, tt.maxValue, tt.width, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 10); got != "short" {
		t.Errorf("clip kept = %q", got)
	}
	if got := clip("a very long department name", 10); got != "a very ..." {
		t.Errorf("clip = %q", got)
	}
	// Accented names truncate on rune boundaries, never mid-encoding.
	got := clip("Département des Sciences Humaines", 10)
	if got != "Départe..." {
		t.Errorf("clip = %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("clip produced invalid UTF-8: %q", got)
	}
}
