package dilemma

import (
	"bytes"
	"strings"
	"testing"
)

func customTable(t *testing.T) Table {
	t.Helper()
	b := NewCustomizedBuilder()
	var err error
	if b, err = b.WithLabels(LabelPair{A: "stag", B: "hare"}); err != nil {
		t.Fatalf("WithLabels: %v", err)
	}
	if b, err = b.WithOutcome(ChoiceAtlantis, ChoiceAtlantis, NewPayoffPair(7, 7)); err != nil {
		t.Fatalf("WithOutcome: %v", err)
	}
	if b, err = b.WithOutcome(ChoiceAtlantis, ChoiceOlympus, NewPayoffPair(0, 2)); err != nil {
		t.Fatalf("WithOutcome: %v", err)
	}
	if b, err = b.WithOutcome(ChoiceOlympus, ChoiceAtlantis, NewPayoffPair(2, 0)); err != nil {
		t.Fatalf("WithOutcome: %v", err)
	}
	if b, err = b.WithOutcome(ChoiceOlympus, ChoiceOlympus, NewPayoffPair(1, 1)); err != nil {
		t.Fatalf("WithOutcome: %v", err)
	}
	return NewTable(b.Build())
}

func TestTableLookup(t *testing.T) {
	tbl := customTable(t)

	tests := []struct {
		p1, p2   Choice
		expected PayoffPair
	}{
		{ChoiceAtlantis, ChoiceAtlantis, NewPayoffPair(7, 7)},
		{ChoiceAtlantis, ChoiceOlympus, NewPayoffPair(0, 2)},
		{ChoiceOlympus, ChoiceAtlantis, NewPayoffPair(2, 0)},
		{ChoiceOlympus, ChoiceOlympus, NewPayoffPair(1, 1)},
	}

	for _, tc := range tests {
		if got := tbl.Lookup(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Lookup(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.expected)
		}
		if got := tbl.Configuration().Outcome(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Outcome(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.expected)
		}
	}
}

func TestTableLookupTotal(t *testing.T) {
	// Lookup must answer every combination, for every mode.
	for _, mode := range Modes() {
		b, _ := NewBuilder(mode)
		tbl := NewTable(b.Build())
		cfg := tbl.Configuration()
		for _, p1 := range Choices() {
			for _, p2 := range Choices() {
				got := tbl.Lookup(p1, p2)
				if got.First() < cfg.MinValue() || got.First() > cfg.MaxValue() {
					t.Errorf("%s: Lookup(%v, %v) = %v outside [%d, %d]", mode, p1, p2, got, cfg.MinValue(), cfg.MaxValue())
				}
			}
		}
	}
}

func TestTableCells(t *testing.T) {
	cells := customTable(t).Cells()

	expected := [3][3]string{
		{CornerHeader, "stag", "hare"},
		{"stag", "(7, 7)", "(0, 2)"},
		{"hare", "(2, 0)", "(1, 1)"},
	}
	if cells != expected {
		t.Errorf("Cells() = %v, expected %v", cells, expected)
	}
}

func TestTableRender(t *testing.T) {
	out := customTable(t).Render()

	for _, want := range []string{CornerHeader, "stag", "hare", "(7, 7)", "(0, 2)", "(2, 0)", "(1, 1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) < 5 {
		t.Errorf("Render() produced %d lines, expected a bordered grid:\n%s", len(lines), out)
	}
}

func TestTablePrint(t *testing.T) {
	tbl := customTable(t)

	var buf bytes.Buffer
	if err := tbl.Print(&buf); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if buf.String() != tbl.Render()+"\n" {
		t.Errorf("Print() wrote %q, expected Render() plus newline", buf.String())
	}
}

func TestTableDescribe(t *testing.T) {
	tbl := customTable(t)

	tests := []struct {
		p1, p2   Choice
		expected string
	}{
		{ChoiceAtlantis, ChoiceAtlantis, "Both players chose stag. Player 1 scored 7, Player 2 scored 7."},
		{ChoiceOlympus, ChoiceOlympus, "Both players chose hare. Player 1 scored 1, Player 2 scored 1."},
		{ChoiceAtlantis, ChoiceOlympus, "Player 1 chose stag, Player 2 chose hare. Player 1 scored 0, Player 2 scored 2."},
		{ChoiceOlympus, ChoiceAtlantis, "Player 1 chose hare, Player 2 chose stag. Player 1 scored 2, Player 2 scored 0."},
	}

	for _, tc := range tests {
		if got := tbl.Describe(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Describe(%v, %v) = %q, expected %q", tc.p1, tc.p2, got, tc.expected)
		}
	}
}

func TestTableString(t *testing.T) {
	got := customTable(t).String()
	expected := "Game Grid with Following Options:\n" +
		"mode: customized, min_value: 0, max_value: 7, label_a: stag, label_b: hare\n"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestTableLabels(t *testing.T) {
	tbl := customTable(t)
	if tbl.LabelA() != "stag" || tbl.LabelB() != "hare" {
		t.Errorf("labels = (%q, %q), expected (stag, hare)", tbl.LabelA(), tbl.LabelB())
	}
	if tbl.Label(ChoiceOlympus) != "hare" {
		t.Errorf("Label(Olympus) = %q, expected hare", tbl.Label(ChoiceOlympus))
	}
}

func TestTableLookupUnknownChoice(t *testing.T) {
	tbl := customTable(t)
	cfg := tbl.Configuration()
	unknown := Choice(7)

	tests := []struct {
		p1, p2   Choice
		expected PayoffPair
	}{
		{unknown, ChoiceAtlantis, cfg.OlympusAtlantis()},
		{ChoiceAtlantis, unknown, cfg.AtlantisOlympus()},
		{unknown, unknown, cfg.OlympusOlympus()},
		{Choice(-1), ChoiceOlympus, cfg.OlympusOlympus()},
	}

	for _, tc := range tests {
		if got := tbl.Lookup(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Lookup(%d, %d) = %v, expected %v", int(tc.p1), int(tc.p2), got, tc.expected)
		}
		if got := cfg.Outcome(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Outcome(%d, %d) = %v, expected %v", int(tc.p1), int(tc.p2), got, tc.expected)
		}
	}
}
