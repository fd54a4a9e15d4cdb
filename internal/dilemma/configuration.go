package dilemma

import "fmt"

// Configuration is a complete, validated 2x2 game: two strategy labels and
// one PayoffPair per combination of choices. It is created by Builder.Build
// and never changes afterwards.
type Configuration struct {
	mode   Mode
	seed   int64
	seeded bool

	minValue uint32
	maxValue uint32

	labels LabelPair

	aa, ab, ba, bb PayoffPair
}

// NewConfiguration builds a randomized configuration over [min, max] with the
// default labels.
func NewConfiguration(min, max uint32) (Configuration, error) {
	b, err := NewRandomizedBuilder().WithRange(min, max)
	if err != nil {
		return Configuration{}, err
	}
	return b.Build(), nil
}

// Mode returns the mode the configuration was built in.
func (c Configuration) Mode() Mode { return c.mode }

// Seed returns the seed for seeded configurations.
func (c Configuration) Seed() (int64, bool) { return c.seed, c.seeded }

// MinValue returns the lower bound of the payoff range.
// For customized configurations this is the smallest payoff in the matrix.
func (c Configuration) MinValue() uint32 { return c.minValue }

// MaxValue returns the upper bound of the payoff range.
func (c Configuration) MaxValue() uint32 { return c.maxValue }

func (c Configuration) LabelA() string { return c.labels.A }
func (c Configuration) LabelB() string { return c.labels.B }
func (c Configuration) Labels() LabelPair { return c.labels }

// Label returns the strategy name shown for choice.
func (c Configuration) Label(choice Choice) string {
	switch choice {
	case ChoiceAtlantis:
		return c.labels.A
	case ChoiceOlympus:
		return c.labels.B
	default:
		return choice.String()
	}
}

func (c Configuration) AtlantisAtlantis() PayoffPair { return c.aa }
func (c Configuration) AtlantisOlympus() PayoffPair { return c.ab }
func (c Configuration) OlympusAtlantis() PayoffPair { return c.ba }
func (c Configuration) OlympusOlympus() PayoffPair { return c.bb }

// Outcome returns the payoff pair for player 1 choosing p1 and player 2
// choosing p2. Unknown choices are treated as ChoiceOlympus.
func (c Configuration) Outcome(p1, p2 Choice) PayoffPair {
	switch p1 {
	case ChoiceAtlantis:
		switch p2 {
		case ChoiceAtlantis:
			return c.aa
		default:
			return c.ab
		}
	default:
		switch p2 {
		case ChoiceAtlantis:
			return c.ba
		default:
			return c.bb
		}
	}
}

// String summarizes the options the configuration was built with.
func (c Configuration) String() string {
	s := fmt.Sprintf("mode: %s, min_value: %d, max_value: %d, label_a: %s, label_b: %s",
		c.mode, c.minValue, c.maxValue, c.labels.A, c.labels.B)
	if c.seeded {
		s += fmt.Sprintf(", seed: %d", c.seed)
	}
	return s
}
