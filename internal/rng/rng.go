// Package rng provides the engine's deterministic pseudo-random source.
// Every shuffle, library-search fallback, and random discard in the engine
// draws from a Source carried as a field of GameState (never a package
// global), so that (seed, action sequence) fully determines every game.
package rng

import "math/rand/v2"

// Source wraps a PCG generator. PCG's binary-marshalable state is what makes
// GameState.Clone able to fork an exact, independent copy of the RNG's
// current position rather than merely replaying from the original seed.
type Source struct {
	pcg *rand.PCG
	gen *rand.Rand
}

// New seeds a Source from a single int64 session seed.
func New(seed int64) *Source {
	hi := uint64(seed)
	lo := uint64(seed>>32) ^ 0x9E3779B97F4A7C15
	pcg := rand.NewPCG(hi, lo)
	return &Source{pcg: pcg, gen: rand.New(pcg)}
}

// Clone returns an independent Source positioned at exactly the same point
// in the stream as s, so neither Source affects the other from here on.
func (s *Source) Clone() *Source {
	state, err := s.pcg.MarshalBinary()
	if err != nil {
		// PCG.MarshalBinary never fails in practice; fall back to an
		// unrelated-but-valid generator rather than panicking mid-game.
		return New(0)
	}
	clonedPCG := &rand.PCG{}
	if err := clonedPCG.UnmarshalBinary(state); err != nil {
		return New(0)
	}
	return &Source{pcg: clonedPCG, gen: rand.New(clonedPCG)}
}

// IntN returns a pseudo-random number in [0, n). Returns 0 for n<=0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.gen.IntN(n)
}

// Shuffle performs an in-place Fisher-Yates shuffle driven by this Source.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}
