// Package ui is the command-line surface of eduquery: the cobra
// command tree and the plain-text renderers used outside the TUI.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/config"
	"github.com/nmoliner/eduquery/internal/gateway"
	"github.com/nmoliner/eduquery/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	svc     gateway.Service
	config  *config.Config
	root    *cobra.Command
	noColor bool
	debug   bool // Enable debug logging
}

// NewApp creates a new CLI application against the given gateway.
func NewApp(svc gateway.Service, cfg *config.Config) *App {
	a := &App{svc: svc, config: cfg}

	a.root = &cobra.Command{
		Use:   "eduquery",
		Short: "A console for browsing the university catalog and managing enrollments",
		Long: `Eduquery is a terminal console for the university enrollment service.

It browses the department/course/section catalog, enrolls the selected
student into sections, and renders the resulting weekly schedule on a
time grid. Run without arguments to start the interactive console.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.svc, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to eduquery-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.studentsCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.enrolledCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.enrollCmd())
	a.root.AddCommand(a.cancelCmd())
	a.root.AddCommand(a.reportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("eduquery %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
