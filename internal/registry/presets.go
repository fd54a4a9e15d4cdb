package registry

import (
	"fmt"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

// Built-in preset ids.
const (
	PrisonersDilemma = "prisoners_dilemma"
	Chicken          = "chicken"
	StagHunt         = "stag_hunt"
	BattleOfSexes    = "battle_of_sexes"
	MatchingPennies  = "matching_pennies"
)

func init() {
	// The builder's own default matrix and labels.
	Register(PrisonersDilemma, "Prisoner's Dilemma", dilemma.NewCustomizedBuilder)

	registerMatrix(Chicken, "Chicken",
		dilemma.LabelPair{A: "swerve", B: "straight"},
		[4][2]uint32{{3, 3}, {1, 4}, {4, 1}, {0, 0}})

	registerMatrix(StagHunt, "Stag Hunt",
		dilemma.LabelPair{A: "stag", B: "hare"},
		[4][2]uint32{{4, 4}, {0, 3}, {3, 0}, {3, 3}})

	registerMatrix(BattleOfSexes, "Battle of the Sexes",
		dilemma.LabelPair{A: "opera", B: "football"},
		[4][2]uint32{{3, 2}, {0, 0}, {0, 0}, {2, 3}})

	// Zero-sum shifted by one so that every payoff stays non-negative.
	registerMatrix(MatchingPennies, "Matching Pennies",
		dilemma.LabelPair{A: "heads", B: "tails"},
		[4][2]uint32{{2, 0}, {0, 2}, {0, 2}, {2, 0}})
}

// registerMatrix registers a customized preset. Cells are given in
// AA, AB, BA, BB order.
func registerMatrix(id, title string, labels dilemma.LabelPair, cells [4][2]uint32) {
	b, err := customized(labels, cells)
	if err != nil {
		panic(fmt.Sprintf("registry: preset %q: %v", id, err))
	}
	Register(id, title, func() dilemma.Builder { return b })
}

func customized(labels dilemma.LabelPair, cells [4][2]uint32) (dilemma.Builder, error) {
	b, err := dilemma.NewCustomizedBuilder().WithLabels(labels)
	if err != nil {
		return b, err
	}

	order := [4][2]dilemma.Choice{
		{dilemma.ChoiceAtlantis, dilemma.ChoiceAtlantis},
		{dilemma.ChoiceAtlantis, dilemma.ChoiceOlympus},
		{dilemma.ChoiceOlympus, dilemma.ChoiceAtlantis},
		{dilemma.ChoiceOlympus, dilemma.ChoiceOlympus},
	}
	for i, c := range order {
		b, err = b.WithOutcome(c[0], c[1], dilemma.NewPayoffPair(cells[i][0], cells[i][1]))
		if err != nil {
			return b, err
		}
	}
	return b, nil
}
