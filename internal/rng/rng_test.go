package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.IntN(1 << 30) != b.IntN(1<<30) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestIntN_DegenerateBounds(t *testing.T) {
	s := New(1)
	assert.Zero(t, s.IntN(0))
	assert.Zero(t, s.IntN(-5))
	assert.Zero(t, s.IntN(1))
}

func TestClone_ContinuesFromSamePoint(t *testing.T) {
	s := New(7)
	for i := 0; i < 13; i++ {
		s.IntN(100)
	}
	cp := s.Clone()
	for i := 0; i < 50; i++ {
		require.Equal(t, s.IntN(1_000_000), cp.IntN(1_000_000))
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := New(7)
	cp := s.Clone()
	s.IntN(100) // advance only the original

	// Re-cloning the advanced original diverges from the earlier clone at
	// the first draw.
	assert.NotEqual(t, cp.IntN(1<<30), s.Clone().IntN(1<<30))
}

func TestShuffle_SeedDeterministic(t *testing.T) {
	shuffle := func(seed int64) []int {
		vals := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		New(seed).Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}
	assert.Equal(t, shuffle(99), shuffle(99))
	assert.NotEqual(t, shuffle(99), shuffle(100))
}
