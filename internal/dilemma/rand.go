package dilemma

import "math/rand"

// NewRand returns a math/rand generator for callers that pick choices rather
// than payoffs (opponent picks in the shells). A zero seed means entropy.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = int64(newEntropyChaCha().Uint64())
	}
	return rand.New(rand.NewSource(seed))
}

// splitSeed derives n sub-seeds from one seed so that each outcome cell gets
// its own stream instead of replaying the same one.
func splitSeed(seed int64, n int) []uint64 {
	master := newChaCha(uint64(seed))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}
	return seeds
}
