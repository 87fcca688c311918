package mistake

import "math/rand/v2"

// Rand is the source of randomness threaded through every primitive and
// Mistaker call. *rand.Rand from math/rand/v2 satisfies it.
//
// A Rand is not safe for concurrent use; give each goroutine its own.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
