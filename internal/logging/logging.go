// Package logging builds the application logger. Everything goes to a file:
// the TUI owns the terminal while the app runs.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production zap logger writing to path.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}
