// Package dilemma models a two-choice simultaneous game: the strategy labels,
// the per-outcome payoff pairs, a mode-checked builder for the full 2x2
// matrix, and the lookup table used during play.
//
// The package has no Bubble Tea or I/O dependencies beyond rendering the
// matrix to text, so everything in it can be tested in isolation.
package dilemma

import (
	"fmt"
	"math/rand"
	"strings"
)

// Choice identifies which of the two available strategies a player picked.
type Choice int

const (
	ChoiceAtlantis Choice = iota // first strategy (label A)
	ChoiceOlympus                // second strategy (label B)
)

// Choices returns both choices in display order.
func Choices() []Choice {
	return []Choice{ChoiceAtlantis, ChoiceOlympus}
}

// String returns a human-readable name for the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceAtlantis:
		return "Atlantis"
	case ChoiceOlympus:
		return "Olympus"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the two defined choices.
func (c Choice) Valid() bool {
	return c == ChoiceAtlantis || c == ChoiceOlympus
}

// ParseChoice parses user input into a Choice.
// Accepts "a"/"b" and "atlantis"/"olympus", case-insensitive.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "atlantis":
		return ChoiceAtlantis, nil
	case "b", "olympus":
		return ChoiceOlympus, nil
	default:
		return ChoiceAtlantis, fmt.Errorf("%w: %q", ErrUnknownChoice, s)
	}
}

// RandomChoice picks one of the two choices uniformly.
func RandomChoice(rng *rand.Rand) Choice {
	if rng.Intn(2) == 0 {
		return ChoiceAtlantis
	}
	return ChoiceOlympus
}
