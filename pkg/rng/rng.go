package rng

import "math/rand/v2"

// Stream is a thin convenience wrapper around math/rand/v2 for deterministic,
// restartable unit-interval draws. The same seed always yields the same
// sequence, which the renderer relies on for stable branch topology.
type Stream struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// New creates a deterministic Stream using the provided seed.
func New(seed uint32) *Stream {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &Stream{pcg: pcg, r: rand.New(pcg)}
}

// Reseed restarts the stream from the given seed without allocating.
func (s *Stream) Reseed(seed uint32) {
	s.pcg.Seed(uint64(seed), 0)
}

// Unit returns the next float in [0, 1).
func (s *Stream) Unit() float64 {
	return s.r.Float64()
}

// Range returns the next float in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Chance reports true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.r.Float64() < p
}

// IntN returns a random int in [0, n). n must be positive.
func (s *Stream) IntN(n int) int {
	return s.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (s *Stream) Source() *rand.Rand { return s.r }
