package dilemma

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"
)

// chachaRounds is the round count of the matrix generator.
const chachaRounds = 12

const chachaBlockWords = 16

// chachaRand is a ChaCha keystream read as a stream of 32-bit little-endian
// words. The block counter is 64 bits wide and the stream id is zero.
//
// A 64-bit seed is expanded into the 256-bit key with PCG32, so a seed picks
// the same draws on every platform and in every process.
type chachaRand struct {
	key     [8]uint32
	counter uint64
	block   [chachaBlockWords]uint32
	next    int
}

// newChaCha returns the generator for seed.
func newChaCha(seed uint64) *chachaRand {
	const (
		pcgMul = 6364136223846793005
		pcgInc = 11634580027462260723
	)

	r := &chachaRand{next: chachaBlockWords}
	state := seed
	for i := range r.key {
		state = state*pcgMul + pcgInc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		r.key[i] = bits.RotateLeft32(xorshifted, -int(state>>59))
	}
	return r
}

// newEntropyChaCha returns a generator keyed from crypto/rand.
// Falls back to a clock seed if the system entropy source is unavailable.
func newEntropyChaCha() *chachaRand {
	var b [32]byte
	if _, err := crand.Read(b[:]); err != nil {
		return newChaCha(uint64(time.Now().UnixNano()))
	}

	r := &chachaRand{next: chachaBlockWords}
	for i := range r.key {
		r.key[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return r
}

// Uint32 returns the next word of the keystream.
func (r *chachaRand) Uint32() uint32 {
	if r.next >= chachaBlockWords {
		chachaBlock(&r.block, &r.key, r.counter, chachaRounds)
		r.counter++
		r.next = 0
	}
	w := r.block[r.next]
	r.next++
	return w
}

// Uint64 combines two words, low word first.
func (r *chachaRand) Uint64() uint64 {
	lo := r.Uint32()
	hi := r.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// intn returns a uniform value in [0, n) by widening multiplication with
// rejection. n must be positive.
func (r *chachaRand) intn(n int) int {
	span := uint64(n)
	zone := span<<bits.LeadingZeros64(span) - 1
	for {
		hi, lo := bits.Mul64(r.Uint64(), span)
		if lo <= zone {
			return int(hi)
		}
	}
}

// uint32Inclusive returns a uniform value in [min, max]. Caller guarantees
// min <= max.
func (r *chachaRand) uint32Inclusive(min, max uint32) uint32 {
	span := max - min + 1
	if span == 0 {
		return r.Uint32()
	}
	zone := span<<bits.LeadingZeros32(span) - 1
	for {
		m := uint64(r.Uint32()) * uint64(span)
		if uint32(m) <= zone {
			return min + uint32(m>>32)
		}
	}
}

// chachaBlock computes one keystream block for counter.
func chachaBlock(out *[chachaBlockWords]uint32, key *[8]uint32, counter uint64, rounds int) {
	in := [chachaBlockWords]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574,
		key[0], key[1], key[2], key[3], key[4], key[5], key[6], key[7],
		uint32(counter), uint32(counter >> 32), 0, 0,
	}

	x := in
	for i := 0; i < rounds; i += 2 {
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)

		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	for i := range out {
		out[i] = x[i] + in[i]
	}
}

func quarterRound(x *[chachaBlockWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}
