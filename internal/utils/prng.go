// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// clockSeeds keeps two services created in the same clock tick apart.
var clockSeeds atomic.Int64

// PRNGService wraps a seeded generator so that every random decision of a
// Game comes from one reproducible source.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator with the given seed.
// A zero seed means "seed from the current time", fresh for every call.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano() + clockSeeds.Add(1)
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use, so a run can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntInclusive returns a number in [lo, hi].
func (s *PRNGService) IntInclusive(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a number in [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// ChooseWeighted draws an index from weights with a single uniform draw
// over the cumulative table: the first index whose running total exceeds
// the draw wins. Returns -1 when there is nothing to choose from.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	r := s.Float64() * total
	return pickCumulative(weights, r)
}

func pickCumulative(weights []float64, r float64) int {
	upto := 0.0
	for i, w := range weights {
		upto += w
		if r < upto {
			return i
		}
	}
	// float rounding can leave r just past the last boundary
	return len(weights) - 1
}
