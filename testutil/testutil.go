package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Triple is an (x, y, z) coordinate triple.
type Triple [3]float64

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

// Triples generates num triples with coordinates in range [-1, 1).
// Uses a single lock for the whole batch.
func (r *RNG) Triples(num int) []Triple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Triple, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = r.rand.Float64()*2 - 1
		}
	}
	return out
}

// BitTriples generates num triples whose coordinates are arbitrary 64-bit
// patterns, so NaN payloads, subnormals and infinities all occur.
func (r *RNG) BitTriples(num int) []Triple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Triple, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = math.Float64frombits(r.rand.Uint64())
		}
	}
	return out
}

// SpecialFloat64s returns values whose bit patterns are easy to lose:
// signed zeros, infinities, quiet and signaling NaNs with payloads,
// subnormals and the extremes.
func SpecialFloat64s() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Float64frombits(0x7ff8000000000000), // quiet NaN, no payload
		math.Float64frombits(0xfff8000000000000), // negative quiet NaN
		math.Float64frombits(0x7ff0000000000001), // signaling NaN
		math.Float64frombits(0x7ff4000000abcdef), // signaling NaN with payload
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		-math.MaxFloat64,
		0.1,
	}
}

// SameBits reports whether a and b have identical IEEE-754 bit patterns.
func SameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
