package main

import (
	"fmt"
	"os"

	"github.com/nmoliner/eduquery/internal/config"
	"github.com/nmoliner/eduquery/internal/gateway"
	"github.com/nmoliner/eduquery/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	svc := gateway.New(cfg.API.BaseURL, cfg.Timeout())
	app := ui.NewApp(svc, cfg)
	return app.Execute()
}
