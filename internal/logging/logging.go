// Package logging builds the structured logger shared by the tactix commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps the terminal quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level.
// An empty level means DefaultLevel; a nil writer means stderr.
func New(level string, w io.Writer) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "tactix",
	}), nil
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that were not handed a logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
