package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeansgo"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Rand returns a rand.Rand seeded from this RNG, for use with
// kmeansgo.WithRand.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63())) // nolint gosec
}

// RangedPoints generates n points whose coordinate d is drawn uniformly
// from ranges[d]. Uses a single backing array for efficiency.
func (r *RNG) RangedPoints(ranges []kmeansgo.Range, n int) []kmeansgo.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	dim := len(ranges)
	data := make([]float64, n*dim)
	points := make([]kmeansgo.Point, n)

	for i := 0; i < n; i++ {
		p := data[i*dim : (i+1)*dim]
		for d, rg := range ranges {
			p[d] = rg.Min + r.rand.Float64()*(rg.Max-rg.Min)
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates n points clumped around clusters anchor
// positions drawn uniformly from ranges. spread scales Gaussian noise
// relative to each dimension's extent; smaller values give tighter
// clumps. Useful for exercising clustering on non-uniform data.
func (r *RNG) ClusteredPoints(ranges []kmeansgo.Range, n, clusters int, spread float64) []kmeansgo.Point {
	if clusters < 1 {
		clusters = 1
	}

	anchors := r.RangedPoints(ranges, clusters)

	r.mu.Lock()
	defer r.mu.Unlock()

	dim := len(ranges)
	data := make([]float64, n*dim)
	points := make([]kmeansgo.Point, n)

	for i := 0; i < n; i++ {
		anchor := anchors[i%clusters]
		p := data[i*dim : (i+1)*dim]
		for d, rg := range ranges {
			p[d] = anchor[d] + r.rand.NormFloat64()*spread*(rg.Max-rg.Min)
		}
		points[i] = p
	}

	return points
}
