// Package testutil provides testing utilities for spatialhasher.
//
// This package is intended for use in tests and benchmarks only.
// It generates float64 coordinate triples, including the special values
// (signed zeros, infinities, NaN payloads) that bit-exact hashing and
// round-trip tests must cover.
//
// # Random Coordinates
//
//	rng := testutil.NewRNG(seed)
//	xyz := rng.Triples(100)             // uniform [-1, 1)
//	bits := rng.BitTriples(100)         // arbitrary 64-bit patterns
//
// # Special Values
//
//	for _, f := range testutil.SpecialFloat64s() { ... }
package testutil
