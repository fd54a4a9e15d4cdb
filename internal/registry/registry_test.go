package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

func TestListBuiltins(t *testing.T) {
	ids := map[string]PresetInfo{}
	for _, info := range List() {
		ids[info.ID] = info
	}

	for _, id := range []string{PrisonersDilemma, Chicken, StagHunt, BattleOfSexes, MatchingPennies} {
		info, ok := ids[id]
		if !ok {
			t.Errorf("List() missing %q", id)
			continue
		}
		if info.Title == "" {
			t.Errorf("preset %q has no title", id)
		}
		if info.Mode != dilemma.ModeCustomized {
			t.Errorf("preset %q mode = %q, expected customized", id, info.Mode)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreatePrisonersDilemma(t *testing.T) {
	b, err := Create(PrisonersDilemma)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", PrisonersDilemma, err)
	}
	cfg := b.Build()

	if cfg.LabelA() != "cooperate" || cfg.LabelB() != "defect" {
		t.Errorf("labels = (%q, %q), expected (cooperate, defect)", cfg.LabelA(), cfg.LabelB())
	}

	tests := []struct {
		p1, p2   dilemma.Choice
		expected dilemma.PayoffPair
	}{
		{dilemma.ChoiceAtlantis, dilemma.ChoiceAtlantis, dilemma.NewPayoffPair(4, 4)},
		{dilemma.ChoiceAtlantis, dilemma.ChoiceOlympus, dilemma.NewPayoffPair(5, 0)},
		{dilemma.ChoiceOlympus, dilemma.ChoiceAtlantis, dilemma.NewPayoffPair(0, 5)},
		{dilemma.ChoiceOlympus, dilemma.ChoiceOlympus, dilemma.NewPayoffPair(3, 3)},
	}
	for _, tc := range tests {
		if got := cfg.Outcome(tc.p1, tc.p2); got != tc.expected {
			t.Errorf("Outcome(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.expected)
		}
	}

	if def := dilemma.NewCustomizedBuilder().Build(); cfg != def {
		t.Errorf("preset = %v, expected the default customized matrix %v", cfg, def)
	}
}

func TestCreateReturnsIndependentBuilders(t *testing.T) {
	b, _ := Create(Chicken)
	if _, err := b.WithLabelA("dodge"); err != nil {
		t.Fatalf("WithLabelA: %v", err)
	}

	fresh, _ := Create(Chicken)
	if got := fresh.Build().LabelA(); got != "swerve" {
		t.Errorf("preset label changed to %q, expected swerve", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("rock_paper_scissors"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestExists(t *testing.T) {
	if !Exists(StagHunt) {
		t.Errorf("Exists(%q) = false, expected true", StagHunt)
	}
	if Exists("nope") {
		t.Error("Exists(\"nope\") = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with a duplicate id should panic")
		}
	}()
	Register(PrisonersDilemma, "again", dilemma.NewRandomizedBuilder)
}

func TestRegisterCustom(t *testing.T) {
	Register("test_seeded", "Seeded test preset", dilemma.NewSeededBuilder)

	b, err := Create("test_seeded")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.Mode() != dilemma.ModeSeeded {
		t.Errorf("Mode() = %q, expected seeded", b.Mode())
	}
}
