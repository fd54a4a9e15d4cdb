// Package config provides YAML game files and environment settings for the
// tactix commands, and turns a game file into a dilemma.Builder.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tactix/internal/dilemma"
	"github.com/vovakirdan/tactix/internal/registry"
)

// ErrPresetMode is returned when a game file names a preset and a mode the
// preset was not registered with.
var ErrPresetMode = errors.New("mode does not match preset")

// GameConfig is the content of a game file.
// Pointer fields distinguish "not set" from zero values.
type GameConfig struct {
	Preset   string         `yaml:"preset,omitempty"`
	Mode     string         `yaml:"mode"`
	Min      *uint32        `yaml:"min,omitempty"`
	Max      *uint32        `yaml:"max,omitempty"`
	Seed     *int64         `yaml:"seed,omitempty"`
	Labels   LabelsConfig   `yaml:"labels"`
	Outcomes OutcomesConfig `yaml:"outcomes,omitempty"`

	// Source records where the file was read from (a path, SourceEmbedded
	// or SourceBuiltin).
	Source string `yaml:"-"`
}

// LabelsConfig selects the strategy names.
type LabelsConfig struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Random bool   `yaml:"random,omitempty"` // pick a catalog pair; explicit a/b still win
}

// OutcomesConfig holds customized payoffs as [player1, player2] lists.
type OutcomesConfig struct {
	AtlantisAtlantis []uint32 `yaml:"atlantis_atlantis,flow,omitempty"`
	AtlantisOlympus  []uint32 `yaml:"atlantis_olympus,flow,omitempty"`
	OlympusAtlantis  []uint32 `yaml:"olympus_atlantis,flow,omitempty"`
	OlympusOlympus   []uint32 `yaml:"olympus_olympus,flow,omitempty"`
}

// Empty reports whether no outcome is set.
func (o OutcomesConfig) Empty() bool {
	return o.AtlantisAtlantis == nil && o.AtlantisOlympus == nil &&
		o.OlympusAtlantis == nil && o.OlympusOlympus == nil
}

// FromConfiguration returns a customized game file that reproduces cfg
// exactly, whatever mode cfg was built in.
func FromConfiguration(cfg dilemma.Configuration) GameConfig {
	pair := func(p dilemma.PayoffPair) []uint32 { return []uint32{p.First(), p.Second()} }
	return GameConfig{
		Mode: string(dilemma.ModeCustomized),
		Labels: LabelsConfig{
			A: cfg.LabelA(),
			B: cfg.LabelB(),
		},
		Outcomes: OutcomesConfig{
			AtlantisAtlantis: pair(cfg.AtlantisAtlantis()),
			AtlantisOlympus:  pair(cfg.AtlantisOlympus()),
			OlympusAtlantis:  pair(cfg.OlympusAtlantis()),
			OlympusOlympus:   pair(cfg.OlympusOlympus()),
		},
	}
}

// Builder converts the game file into a builder. Every field goes through
// the dilemma setters, so a field the mode does not allow fails with
// dilemma.ErrInvalidOptionSpecified.
func (c GameConfig) Builder() (dilemma.Builder, error) {
	b, err := c.baseBuilder()
	if err != nil {
		return b, err
	}

	switch {
	case c.Min != nil && c.Max != nil:
		b, err = b.WithRange(*c.Min, *c.Max)
	case c.Min != nil:
		b, err = b.WithMin(*c.Min)
	case c.Max != nil:
		b, err = b.WithMax(*c.Max)
	}
	if err != nil {
		return b, fmt.Errorf("config: %w", err)
	}

	if c.Seed != nil {
		if b, err = b.WithSeed(*c.Seed); err != nil {
			return b, fmt.Errorf("config: %w", err)
		}
	}

	if b, err = c.applyLabels(b); err != nil {
		return b, fmt.Errorf("config: %w", err)
	}

	if b, err = c.applyOutcomes(b); err != nil {
		return b, fmt.Errorf("config: %w", err)
	}

	return b, nil
}

func (c GameConfig) baseBuilder() (dilemma.Builder, error) {
	mode, err := dilemma.ParseMode(c.Mode)
	if err != nil {
		return dilemma.Builder{}, fmt.Errorf("config: %w", err)
	}

	if c.Preset == "" {
		return dilemma.NewBuilder(mode)
	}

	b, err := registry.Create(c.Preset)
	if err != nil {
		return b, fmt.Errorf("config: %w", err)
	}
	if c.Mode != "" && b.Mode() != mode {
		return b, fmt.Errorf("config: preset %q is %s, file asks for %s: %w",
			c.Preset, b.Mode(), mode, ErrPresetMode)
	}
	return b, nil
}

func (c GameConfig) applyLabels(b dilemma.Builder) (dilemma.Builder, error) {
	var err error
	if c.Labels.Random {
		pair := dilemma.RandomLabelPair()
		if c.Seed != nil {
			pair = dilemma.RandomLabelPairSeeded(*c.Seed)
		}
		if b, err = b.WithLabels(pair); err != nil {
			return b, err
		}
	}
	if c.Labels.A != "" {
		if b, err = b.WithLabelA(c.Labels.A); err != nil {
			return b, err
		}
	}
	if c.Labels.B != "" {
		if b, err = b.WithLabelB(c.Labels.B); err != nil {
			return b, err
		}
	}
	return b, nil
}

func (c GameConfig) applyOutcomes(b dilemma.Builder) (dilemma.Builder, error) {
	cells := []struct {
		name   string
		p1, p2 dilemma.Choice
		values []uint32
	}{
		{"atlantis_atlantis", dilemma.ChoiceAtlantis, dilemma.ChoiceAtlantis, c.Outcomes.AtlantisAtlantis},
		{"atlantis_olympus", dilemma.ChoiceAtlantis, dilemma.ChoiceOlympus, c.Outcomes.AtlantisOlympus},
		{"olympus_atlantis", dilemma.ChoiceOlympus, dilemma.ChoiceAtlantis, c.Outcomes.OlympusAtlantis},
		{"olympus_olympus", dilemma.ChoiceOlympus, dilemma.ChoiceOlympus, c.Outcomes.OlympusOlympus},
	}

	var err error
	for _, cell := range cells {
		if cell.values == nil {
			continue
		}
		if len(cell.values) != 2 {
			return b, fmt.Errorf("outcome %s: expected [player1, player2], got %d values: %w",
				cell.name, len(cell.values), dilemma.ErrInvalidOptionValueSpecified)
		}
		pair := dilemma.NewPayoffPair(cell.values[0], cell.values[1])
		if b, err = b.WithOutcome(cell.p1, cell.p2, pair); err != nil {
			return b, err
		}
	}
	return b, nil
}
