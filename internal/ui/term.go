package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the plain output.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Open sections: green
	colorOpen = color.New(color.FgGreen)

	// Nearly full sections: yellow
	colorLow = color.New(color.FgYellow)

	// Full sections and errors: red
	colorFull = color.New(color.FgRed, color.Bold)

	// Success confirmations: green bold
	colorSuccess = color.New(color.FgGreen, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatOpen formats an open-seats badge.
func formatOpen(s string) string {
	return colorOpen.Sprint(s)
}

// formatLow formats a nearly-full badge.
func formatLow(s string) string {
	return colorLow.Sprint(s)
}

// formatFull formats a full badge or an error line.
func formatFull(s string) string {
	return colorFull.Sprint(s)
}

// formatSuccess formats a confirmation line.
func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
