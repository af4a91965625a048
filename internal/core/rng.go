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

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [min, max] inclusive.
func (r *RNG) Between(min, max int) int {
	if max < min {
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// Offset returns a random IVec3 with each axis drawn from [-radius, radius].
func (r *RNG) Offset(radius int) IVec3 {
	if radius < 0 {
		radius = 0
	}
	return IVec3{
		X: r.Between(-radius, radius),
		Y: r.Between(-radius, radius),
		Z: r.Between(-radius, radius),
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
