// Package main is the entry point for the greeter binary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/antonrybalko/greeter-go/internal/app"
	"github.com/antonrybalko/greeter-go/internal/config"
	"github.com/antonrybalko/greeter-go/internal/logging"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run writes the configured greeting to out. Logs go to stderr.
func run(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return err
	}
	// Sync on a console stderr returns EINVAL on some platforms; nothing useful to report.
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	sugar.Debugw("Greeting", "environment", cfg.Environment, "name", cfg.Name)

	if _, err := fmt.Fprintln(out, app.Greet(cfg.Name)); err != nil {
		sugar.Errorw("Failed to write greeting", "error", err)
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
