package dilemma

import "fmt"

// Mode selects how a Builder produces the payoff matrix. It is fixed when the
// builder is created and decides which setters are accepted.
type Mode string

const (
	ModeRandomized Mode = "randomized" // every cell drawn from [min, max]
	ModeSeeded     Mode = "seeded"     // like randomized, reproducible from a seed
	ModeCustomized Mode = "customized" // caller supplies the cells
)

// Modes returns all builder modes.
func Modes() []Mode {
	return []Mode{ModeRandomized, ModeSeeded, ModeCustomized}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRandomized, ModeSeeded, ModeCustomized:
		return m, nil
	case "":
		return ModeRandomized, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Default range used when min or max is not set.
const (
	DefaultMinValue uint32 = 1
	DefaultMaxValue uint32 = 10
)

// Option names used in errors.
const (
	OptionMin     = "min"
	OptionMax     = "max"
	OptionLabelA  = "label_a"
	OptionLabelB  = "label_b"
	OptionSeed    = "seed"
	OptionOutcome = "outcome"
)

// allowedOptions lists the setters each mode accepts.
var allowedOptions = map[Mode]map[string]bool{
	ModeRandomized: {OptionMin: true, OptionMax: true, OptionLabelA: true, OptionLabelB: true},
	ModeSeeded:     {OptionMin: true, OptionMax: true, OptionLabelA: true, OptionLabelB: true, OptionSeed: true},
	ModeCustomized: {OptionLabelA: true, OptionLabelB: true, OptionOutcome: true},
}

// Builder assembles a Configuration field by field.
//
// Builder is a value type: each setter returns an updated copy, and a
// rejected setter returns the receiver unchanged together with an
// *OptionError. The zero Builder behaves as a randomized builder.
type Builder struct {
	mode Mode

	minValue, maxValue uint32
	hasMin, hasMax     bool

	labelA, labelB string

	seed    int64
	hasSeed bool

	outcomes   [2][2]PayoffPair
	outcomeSet [2][2]bool
}

// NewBuilder creates a builder for the given mode.
func NewBuilder(mode Mode) (Builder, error) {
	if _, ok := allowedOptions[mode]; !ok {
		return Builder{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return Builder{mode: mode}, nil
}

// NewRandomizedBuilder creates a builder in ModeRandomized.
func NewRandomizedBuilder() Builder { return Builder{mode: ModeRandomized} }

// NewSeededBuilder creates a builder in ModeSeeded.
func NewSeededBuilder() Builder { return Builder{mode: ModeSeeded} }

// NewCustomizedBuilder creates a builder in ModeCustomized.
func NewCustomizedBuilder() Builder { return Builder{mode: ModeCustomized} }

// Mode returns the builder's mode.
func (b Builder) Mode() Mode {
	if b.mode == "" {
		return ModeRandomized
	}
	return b.mode
}

func (b Builder) check(option string) error {
	if !allowedOptions[b.Mode()][option] {
		return &OptionError{Mode: b.Mode(), Option: option, Err: ErrInvalidOptionSpecified}
	}
	return nil
}

func (b Builder) invalidValue(option, detail string) error {
	return &OptionError{Mode: b.Mode(), Option: option, Err: ErrInvalidOptionValueSpecified, Detail: detail}
}

// effectiveRange fills unset bounds with the defaults. A single bound that
// lands on the wrong side of the other default gives the default range.
func (b Builder) effectiveRange() (uint32, uint32) {
	min, max := DefaultMinValue, DefaultMaxValue
	if b.hasMin {
		min = b.minValue
	}
	if b.hasMax {
		max = b.maxValue
	}
	if min >= max {
		return DefaultMinValue, DefaultMaxValue
	}
	return min, max
}

// WithMin sets the lower bound of the random range.
// Once max is set explicitly the value must stay below it.
func (b Builder) WithMin(v uint32) (Builder, error) {
	if err := b.check(OptionMin); err != nil {
		return b, err
	}
	if b.hasMax && v >= b.maxValue {
		return b, b.invalidValue(OptionMin, fmt.Sprintf("%d is not below max %d", v, b.maxValue))
	}
	b.minValue, b.hasMin = v, true
	return b, nil
}

// WithMax sets the upper bound of the random range.
// Once min is set explicitly the value must stay above it.
func (b Builder) WithMax(v uint32) (Builder, error) {
	if err := b.check(OptionMax); err != nil {
		return b, err
	}
	if b.hasMin && v <= b.minValue {
		return b, b.invalidValue(OptionMax, fmt.Sprintf("%d is not above min %d", v, b.minValue))
	}
	b.maxValue, b.hasMax = v, true
	return b, nil
}

// WithRange sets min and max together, avoiding the ordering constraints of
// WithMin and WithMax.
func (b Builder) WithRange(min, max uint32) (Builder, error) {
	if err := b.check(OptionMin); err != nil {
		return b, err
	}
	if err := b.check(OptionMax); err != nil {
		return b, err
	}
	if min >= max {
		return b, b.invalidValue(OptionMin, fmt.Sprintf("range [%d, %d] is empty", min, max))
	}
	b.minValue, b.hasMin = min, true
	b.maxValue, b.hasMax = max, true
	return b, nil
}

// WithLabelA sets the label of the first strategy.
func (b Builder) WithLabelA(label string) (Builder, error) {
	if err := b.check(OptionLabelA); err != nil {
		return b, err
	}
	if label == "" {
		return b, b.invalidValue(OptionLabelA, "label cannot be empty")
	}
	b.labelA = label
	return b, nil
}

// WithLabelB sets the label of the second strategy.
func (b Builder) WithLabelB(label string) (Builder, error) {
	if err := b.check(OptionLabelB); err != nil {
		return b, err
	}
	if label == "" {
		return b, b.invalidValue(OptionLabelB, "label cannot be empty")
	}
	b.labelB = label
	return b, nil
}

// WithLabels sets both labels from a catalog pair.
func (b Builder) WithLabels(pair LabelPair) (Builder, error) {
	next, err := b.WithLabelA(pair.A)
	if err != nil {
		return b, err
	}
	next, err = next.WithLabelB(pair.B)
	if err != nil {
		return b, err
	}
	return next, nil
}

// WithSeed sets the seed for ModeSeeded.
func (b Builder) WithSeed(seed int64) (Builder, error) {
	if err := b.check(OptionSeed); err != nil {
		return b, err
	}
	b.seed, b.hasSeed = seed, true
	return b, nil
}

// WithOutcome sets the payoff for player 1 choosing p1 and player 2 choosing p2.
func (b Builder) WithOutcome(p1, p2 Choice, pair PayoffPair) (Builder, error) {
	if err := b.check(OptionOutcome); err != nil {
		return b, err
	}
	if !p1.Valid() || !p2.Valid() {
		return b, b.invalidValue(OptionOutcome, fmt.Sprintf("unknown choice combination (%d, %d)", p1, p2))
	}
	b.outcomes[p1][p2] = pair
	b.outcomeSet[p1][p2] = true
	return b, nil
}

// canonicalOutcomes is the matrix used by customized builds for unset cells.
var canonicalOutcomes = [2][2]PayoffPair{
	ChoiceAtlantis: {
		ChoiceAtlantis: NewPayoffPair(4, 4),
		ChoiceOlympus:  NewPayoffPair(5, 0),
	},
	ChoiceOlympus: {
		ChoiceAtlantis: NewPayoffPair(0, 5),
		ChoiceOlympus:  NewPayoffPair(3, 3),
	},
}

// Build produces the Configuration. It never fails: unset fields take their
// defaults and every setter has already validated its value.
func (b Builder) Build() Configuration {
	cfg := Configuration{
		mode:   b.Mode(),
		labels: DefaultLabels,
	}
	if b.labelA != "" {
		cfg.labels.A = b.labelA
	}
	if b.labelB != "" {
		cfg.labels.B = b.labelB
	}

	var cells [2][2]PayoffPair
	switch cfg.mode {
	case ModeCustomized:
		for _, p1 := range Choices() {
			for _, p2 := range Choices() {
				cells[p1][p2] = canonicalOutcomes[p1][p2]
				if b.outcomeSet[p1][p2] {
					cells[p1][p2] = b.outcomes[p1][p2]
				}
			}
		}
		cfg.minValue, cfg.maxValue = observedBounds(cells)

	case ModeSeeded:
		cfg.minValue, cfg.maxValue = b.effectiveRange()
		cfg.seed, cfg.seeded = b.seed, true
		seeds := splitSeed(b.seed, 4)
		for i, cell := range cellOrder {
			cells[cell[0]][cell[1]] = randomPair(newChaCha(seeds[i]), cfg.minValue, cfg.maxValue)
		}

	default:
		cfg.minValue, cfg.maxValue = b.effectiveRange()
		for _, cell := range cellOrder {
			cells[cell[0]][cell[1]] = randomPair(newEntropyChaCha(), cfg.minValue, cfg.maxValue)
		}
	}

	cfg.aa = cells[ChoiceAtlantis][ChoiceAtlantis]
	cfg.ab = cells[ChoiceAtlantis][ChoiceOlympus]
	cfg.ba = cells[ChoiceOlympus][ChoiceAtlantis]
	cfg.bb = cells[ChoiceOlympus][ChoiceOlympus]
	return cfg
}

// cellOrder fixes which sub-seed each cell draws from.
var cellOrder = [4][2]Choice{
	{ChoiceAtlantis, ChoiceAtlantis},
	{ChoiceAtlantis, ChoiceOlympus},
	{ChoiceOlympus, ChoiceAtlantis},
	{ChoiceOlympus, ChoiceOlympus},
}

func observedBounds(cells [2][2]PayoffPair) (uint32, uint32) {
	lo, hi := cells[0][0].first, cells[0][0].first
	for _, row := range cells {
		for _, p := range row {
			lo = min(lo, p.first, p.second)
			hi = max(hi, p.first, p.second)
		}
	}
	return lo, hi
}
