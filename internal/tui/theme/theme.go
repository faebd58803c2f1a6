// Package theme provides color themes for the console.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a console theme.
type Theme struct {
	Name        string
	Bg          string // base background
	BgHighlight string // cards, subtle highlight
	BgSelection string // cursor row
	Fg          string // primary foreground
	FgMuted     string // secondary text, slot separators
	Accent      string // titles, active tab, borders
	Success     string // enrolled badges, success feedback
	Error       string // full sections, error feedback
	Warning     string // low-seat badges
	Block       string // schedule block background
	BlockAlt    string // alternate shade for stacked overlaps
}

var builtin = map[string]Theme{
	"dark": {
		Name:        "dark",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Success:     "#a6e3a1",
		Error:       "#f38ba8",
		Warning:     "#f9e2af",
		Block:       "#94e2d5",
		BlockAlt:    "#74c7ec",
	},
	"light": {
		Name:        "light",
		Bg:          "#eff1f5",
		BgHighlight: "#e6e9ef",
		BgSelection: "#ccd0da",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Success:     "#40a02b",
		Error:       "#d20f39",
		Warning:     "#df8e1d",
		Block:       "#179299",
		BlockAlt:    "#209fb5",
	},
}

// Load returns the named theme. Unknown names are an error so the
// caller can decide its own fallback.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "dark"
	}
	t, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// Names lists the available theme names.
func Names() []string {
	return []string{"dark", "light"}
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}
