package dilemma

import "fmt"

// LabelPair names the two strategies of a configuration.
type LabelPair struct {
	A string // label for ChoiceAtlantis
	B string // label for ChoiceOlympus
}

// labelCatalog is the fixed set of thematic strategy names.
// Labels are distinct within a pair but may repeat across pairs.
var labelCatalog = [...]LabelPair{
	{A: "cooperate", B: "defect"},
	{A: "swerve", B: "straight"},
	{A: "macro", B: "micro"},
	{A: "fight", B: "back_down"},
	{A: "bet", B: "fold"},
	{A: "raise_price", B: "lower_price"},
	{A: "opera", B: "football"},
	{A: "go", B: "stay"},
	{A: "heads", B: "tails"},
	{A: "particle", B: "wave"},
	{A: "discrete", B: "continuous"},
	{A: "peace", B: "war"},
	{A: "search", B: "evaluate"},
	{A: "lead", B: "follow"},
	{A: "accept", B: "reject"},
	{A: "accept", B: "deny"},
	{A: "attack", B: "decay"},
}

// DefaultLabels is used whenever a configuration is built without labels.
var DefaultLabels = labelCatalog[0]

// LabelCount returns the number of pairs in the catalog.
func LabelCount() int {
	return len(labelCatalog)
}

// LabelPairs returns a copy of the catalog in index order.
func LabelPairs() []LabelPair {
	pairs := make([]LabelPair, len(labelCatalog))
	copy(pairs, labelCatalog[:])
	return pairs
}

// LabelPairAt returns the pair at index.
func LabelPairAt(index int) (LabelPair, error) {
	if index < 0 || index >= len(labelCatalog) {
		return LabelPair{}, fmt.Errorf("%w: %d not in [0, %d)", ErrLabelIndexOutOfRange, index, len(labelCatalog))
	}
	return labelCatalog[index], nil
}

// RandomLabelPair picks a catalog pair uniformly with a fresh generator.
func RandomLabelPair() LabelPair {
	return labelCatalog[newEntropyChaCha().intn(len(labelCatalog))]
}

// RandomLabelPairSeeded picks a catalog pair uniformly; the same seed always
// selects the same pair.
func RandomLabelPairSeeded(seed int64) LabelPair {
	return labelCatalog[newChaCha(uint64(seed)).intn(len(labelCatalog))]
}
