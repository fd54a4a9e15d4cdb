package dilemma

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigurationString(t *testing.T) {
	b, _ := NewSeededBuilder().WithSeed(42)
	cfg := b.Build()

	got := cfg.String()
	expected := "mode: seeded, min_value: 1, max_value: 10, label_a: cooperate, label_b: defect, seed: 42"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if s := NewRandomizedBuilder().Build().String(); strings.Contains(s, "seed") {
		t.Errorf("randomized String() = %q, should not mention a seed", s)
	}
}

func TestConfigurationLabel(t *testing.T) {
	cfg := NewCustomizedBuilder().Build()

	if cfg.Label(ChoiceAtlantis) != "cooperate" {
		t.Errorf("Label(Atlantis) = %q, expected cooperate", cfg.Label(ChoiceAtlantis))
	}
	if cfg.Label(ChoiceOlympus) != "defect" {
		t.Errorf("Label(Olympus) = %q, expected defect", cfg.Label(ChoiceOlympus))
	}
	if cfg.Labels() != DefaultLabels {
		t.Errorf("Labels() = %+v, expected %+v", cfg.Labels(), DefaultLabels)
	}
}

func TestOptionErrorMessage(t *testing.T) {
	_, err := NewCustomizedBuilder().WithSeed(1)
	if err == nil {
		t.Fatal("expected an error")
	}
	expected := "invalid option specified: seed in customized mode"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}

	_, err = NewRandomizedBuilder().WithLabelA("")
	var optErr *OptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("error %v is not an *OptionError", err)
	}
	if optErr.Detail == "" {
		t.Error("value errors should carry a detail")
	}
}
