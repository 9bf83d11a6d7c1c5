package gen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is an explicitly owned, seedable random source. It is not safe for
// concurrent use: each campaign owns exactly one Source.
type Source struct {
	rnd *rand.Rand
}

// NewSource returns a deterministic Source for the given seed. Equal seeds
// produce equal draw sequences.
func NewSource(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandomSource returns a Source seeded from system entropy, for
// interactive runs where reproducibility is not needed.
func NewRandomSource() *Source {
	return NewSource(EntropySeed())
}

// EntropySeed draws a seed from the operating system entropy pool.
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// fixed seed rather than panicking in a fuzzing tool.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// IntBetween returns a uniform integer in [min, max], both inclusive.
func (s *Source) IntBetween(min, max int64) int64 {
	if min >= max {
		return min
	}
	return min + s.rnd.Int63n(max-min+1)
}

// Bool returns a fair coin flip.
func (s *Source) Bool() bool {
	return s.rnd.Intn(2) == 1
}

// Pick returns a uniform index in [0, n).
func (s *Source) Pick(n int) int {
	return s.rnd.Intn(n)
}
