package dilemma

import "fmt"

// PayoffPair is the simultaneous reward to player 1 and player 2 for one
// joint outcome. Either value may exceed the other.
type PayoffPair struct {
	first  uint32
	second uint32
}

// NewPayoffPair stores (first, second) verbatim.
func NewPayoffPair(first, second uint32) PayoffPair {
	return PayoffPair{first: first, second: second}
}

// RandomPayoffPair draws both values independently from [min, max] using a
// generator owned by this call. Returns ErrInvalidRange unless min < max.
func RandomPayoffPair(min, max uint32) (PayoffPair, error) {
	if err := checkRange(min, max); err != nil {
		return PayoffPair{}, err
	}
	return randomPair(newEntropyChaCha(), min, max), nil
}

// RandomPayoffPairSeeded is RandomPayoffPair with a deterministic generator:
// the same (min, max, seed) always yields the same pair.
func RandomPayoffPairSeeded(min, max uint32, seed int64) (PayoffPair, error) {
	if err := checkRange(min, max); err != nil {
		return PayoffPair{}, err
	}
	return randomPair(newChaCha(uint64(seed)), min, max), nil
}

func randomPair(rng *chachaRand, min, max uint32) PayoffPair {
	first := rng.uint32Inclusive(min, max)
	second := rng.uint32Inclusive(min, max)
	return NewPayoffPair(first, second)
}

func checkRange(min, max uint32) error {
	if min >= max {
		return fmt.Errorf("%w: got min=%d max=%d", ErrInvalidRange, min, max)
	}
	return nil
}

// First returns player 1's payoff.
func (p PayoffPair) First() uint32 {
	return p.first
}

// Second returns player 2's payoff.
func (p PayoffPair) Second() uint32 {
	return p.second
}

// String renders the pair as "(first, second)".
func (p PayoffPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.first, p.second)
}
