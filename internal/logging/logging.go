// Package logging builds the zap logger used by the binaries.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a logger for the given environment. Production gets JSON output,
// test gets a no-op logger and everything else gets the development console logger.
// All flavours write to stderr.
func New(environment string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	case "test":
		logger = zap.NewNop()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
