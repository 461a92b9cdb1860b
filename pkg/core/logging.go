package core

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a leveled logger writing to w. Level is one of
// debug, info, warn, error (case-insensitive).
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "raytracer",
		Level:           lvl,
	}), nil
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *log.Logger {
	return log.New(io.Discard)
}
