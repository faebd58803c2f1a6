// Package tui provides the terminal console for eduquery.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nmoliner/eduquery/internal/tui/theme"
)

// Styles holds all lipgloss styles for the console, derived from a theme.
type Styles struct {
	colorBg        lipgloss.Color
	colorHighlight lipgloss.Color
	colorSelection lipgloss.Color
	colorFg        lipgloss.Color
	colorMuted     lipgloss.Color
	colorAccent    lipgloss.Color
	colorSuccess   lipgloss.Color
	colorError     lipgloss.Color
	colorWarning   lipgloss.Color
	colorBlock     lipgloss.Color
	colorBlockAlt  lipgloss.Color

	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// List rows
	Row       lipgloss.Style
	RowCursor lipgloss.Style
	RowMuted  lipgloss.Style

	// Badges
	BadgeOpen lipgloss.Style
	BadgeLow  lipgloss.Style
	BadgeFull lipgloss.Style

	// Feedback
	FeedbackSuccess lipgloss.Style
	FeedbackError   lipgloss.Style

	// Schedule grid
	TimeColumn    lipgloss.Style
	DayHeader     lipgloss.Style
	GridEmpty     lipgloss.Style
	GridBlock     lipgloss.Style
	GridBlockAlt  lipgloss.Style
	GridSpan      lipgloss.Style
	GridSpanAlt   lipgloss.Style
	LegendSwatch  lipgloss.Style
	LegendOffGrid lipgloss.Style

	// Footer
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
	ReportBar  lipgloss.Style
	ReportText lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorHighlight: theme.Color(t.BgHighlight),
		colorSelection: theme.Color(t.BgSelection),
		colorFg:        theme.Color(t.Fg),
		colorMuted:     theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorSuccess:   theme.Color(t.Success),
		colorError:     theme.Color(t.Error),
		colorWarning:   theme.Color(t.Warning),
		colorBlock:     theme.Color(t.Block),
		colorBlockAlt:  theme.Color(t.BlockAlt),
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(s.colorBg).Background(s.colorAccent).Padding(0, 1)
	s.TabInactive = lipgloss.NewStyle().Foreground(s.colorMuted).Padding(0, 1)

	s.Row = lipgloss.NewStyle().Foreground(s.colorFg)
	s.RowCursor = lipgloss.NewStyle().Foreground(s.colorFg).Background(s.colorSelection).Bold(true)
	s.RowMuted = lipgloss.NewStyle().Foreground(s.colorMuted)

	s.BadgeOpen = lipgloss.NewStyle().Foreground(s.colorSuccess)
	s.BadgeLow = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.BadgeFull = lipgloss.NewStyle().Foreground(s.colorError).Bold(true)

	s.FeedbackSuccess = lipgloss.NewStyle().Foreground(s.colorSuccess).Bold(true)
	s.FeedbackError = lipgloss.NewStyle().Foreground(s.colorError).Bold(true)

	s.TimeColumn = lipgloss.NewStyle().Foreground(s.colorMuted).Width(9).Align(lipgloss.Right)
	s.DayHeader = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent).Align(lipgloss.Center)
	s.GridEmpty = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.GridBlock = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorBlock).Bold(true)
	s.GridBlockAlt = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorBlockAlt).Bold(true)
	s.GridSpan = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorBlock)
	s.GridSpanAlt = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorBlockAlt)
	s.LegendSwatch = lipgloss.NewStyle().Foreground(s.colorBlock)
	s.LegendOffGrid = lipgloss.NewStyle().Foreground(s.colorWarning)

	s.Status = lipgloss.NewStyle().Foreground(s.colorFg)
	s.StatusErr = lipgloss.NewStyle().Foreground(s.colorError)
	s.Help = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.Spinner = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.ReportBar = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.ReportText = lipgloss.NewStyle().Foreground(s.colorFg)

	return s
}
