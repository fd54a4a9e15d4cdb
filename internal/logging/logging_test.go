package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		expected  log.Level
		debugSeen bool
	}{
		{"", log.WarnLevel, false},
		{"debug", log.DebugLevel, true},
		{"INFO", log.InfoLevel, false},
		{"error", log.ErrorLevel, false},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		logger, err := New(tc.level, &buf)
		if err != nil {
			t.Fatalf("New(%q) error: %v", tc.level, err)
		}
		if logger.GetLevel() != tc.expected {
			t.Errorf("New(%q) level = %v, expected %v", tc.level, logger.GetLevel(), tc.expected)
		}

		logger.Debug("building matrix", "mode", "seeded")
		if got := strings.Contains(buf.String(), "building matrix"); got != tc.debugSeen {
			t.Errorf("New(%q): debug line written = %v, expected %v", tc.level, got, tc.debugSeen)
		}
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	logger.Warn("config not found")

	out := buf.String()
	if !strings.Contains(out, "tactix") || !strings.Contains(out, "config not found") {
		t.Errorf("log output = %q, expected prefix and message", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", nil); !errors.Is(err, log.ErrInvalidLevel) {
		t.Errorf("New(\"loud\") error = %v, expected log.ErrInvalidLevel", err)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("ignored")
	if logger.GetLevel() != log.FatalLevel {
		t.Errorf("Discard() level = %v, expected fatal", logger.GetLevel())
	}
}
