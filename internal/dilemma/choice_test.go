package dilemma

import (
	"errors"
	"testing"
)

func TestChoiceString(t *testing.T) {
	tests := []struct {
		c        Choice
		expected string
	}{
		{ChoiceAtlantis, "Atlantis"},
		{ChoiceOlympus, "Olympus"},
		{Choice(9), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Choice(%d).String() = %q, expected %q", int(tc.c), got, tc.expected)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected Choice
		wantErr  bool
	}{
		{"a", ChoiceAtlantis, false},
		{"A", ChoiceAtlantis, false},
		{" atlantis\n", ChoiceAtlantis, false},
		{"b", ChoiceOlympus, false},
		{"Olympus", ChoiceOlympus, false},
		{"", ChoiceAtlantis, true},
		{"c", ChoiceAtlantis, true},
	}

	for _, tc := range tests {
		got, err := ParseChoice(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseChoice(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownChoice) {
			t.Errorf("ParseChoice(%q) error = %v, expected ErrUnknownChoice", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("ParseChoice(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestRandomChoice(t *testing.T) {
	rng := NewRand(11)
	seen := map[Choice]bool{}
	for i := 0; i < 100; i++ {
		c := RandomChoice(rng)
		if !c.Valid() {
			t.Fatalf("RandomChoice() = %d, not a valid choice", int(c))
		}
		seen[c] = true
	}
	if len(seen) != 2 {
		t.Errorf("RandomChoice() over 100 draws saw %v, expected both choices", seen)
	}
}
