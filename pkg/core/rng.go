package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Offset returns a random integer in [0, n), used to decorrelate noise fields.
func (r *RNG) Offset(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Unit returns a random float64 in [0, 1).
func (r *RNG) Unit() float64 {
	return r.r.Float64()
}

// IntBetween returns a random integer in [lo, hi] inclusive.
func (r *RNG) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// FillUnit fills the buffer with values in [0, 1) using the RNG.
func FillUnit(r *RNG, buf []float64) {
	for i := range buf {
		buf[i] = r.r.Float64()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
