package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickCumulativeBoundaries(t *testing.T) {
	weights := []float64{0.5, 0.3, 0.2}

	assert.Equal(t, 0, pickCumulative(weights, 0))
	assert.Equal(t, 0, pickCumulative(weights, 0.49))
	assert.Equal(t, 1, pickCumulative(weights, 0.5))
	assert.Equal(t, 1, pickCumulative(weights, 0.79))
	assert.Equal(t, 2, pickCumulative(weights, 0.81))
	assert.Equal(t, 2, pickCumulative(weights, 1.0))
}

func TestChooseWeightedIsReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	weights := []float64{0.5, 0.3, 0.2}
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.ChooseWeighted(weights), b.ChooseWeighted(weights))
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	s := NewPRNGService(42)
	weights := []float64{0.5, 0.3, 0.2}
	counts := make([]int, len(weights))
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[s.ChooseWeighted(weights)]++
	}
	for i, w := range weights {
		assert.InDelta(t, w, float64(counts[i])/draws, 0.02, "index %d", i)
	}
}

func TestChooseWeightedDegenerate(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, -1, s.ChooseWeighted(nil))
	assert.Equal(t, 0, s.ChooseWeighted([]float64{0, 0}))
	assert.Equal(t, 1, s.ChooseWeighted([]float64{0, 1}))
}

func TestIntInclusiveAndUniformRanges(t *testing.T) {
	s := NewPRNGService(3)
	sawLo, sawHi := false, false
	for i := 0; i < 1000; i++ {
		n := s.IntInclusive(0, 3)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 3)
		sawLo = sawLo || n == 0
		sawHi = sawHi || n == 3

		f := s.Uniform(-2, 2)
		assert.GreaterOrEqual(t, f, -2.0)
		assert.Less(t, f, 2.0)
	}
	assert.True(t, sawLo && sawHi, "both ends of the inclusive range are reachable")
}

func TestClockSeedsDifferPerService(t *testing.T) {
	a := NewPRNGService(0)
	b := NewPRNGService(0)
	assert.NotZero(t, a.Seed())
	assert.NotEqual(t, a.Seed(), b.Seed())

	assert.Equal(t, int64(7), NewPRNGService(7).Seed())
}
