// Package spatialhasher provides Point3D, a three-coordinate value type whose
// hash is a pure function of the exact bits it stores.
//
// # Hashing
//
// WriteHash feeds the IEEE-754 bit patterns of X, Y and Z, in that order,
// into any hash.Hash the caller picks. Numerically equal points with
// different bits (0 and -0, NaNs with different payloads) hash differently:
//
//	h, _ := hasher.New64(hasher.XXHash)
//	sum := p.Sum64(h)
//
// # Keys and Equality
//
// Go's == on Point3D is IEEE numeric comparison, so NaN never equals itself
// and 0 == -0. Key returns the bit identity instead and is the right map key:
//
//	seen := map[spatialhasher.Key]struct{}{}
//	seen[p.Key()] = struct{}{}
//
// Set and Dedup build on Key for spatial deduplication.
//
// # Structured Records
//
// A point encodes as a record with the fields x, y and z through JSON,
// YAML, CBOR and MessagePack (see package codec). Every form reproduces the
// exact bit pattern of each coordinate. Decoding a record with a missing or
// non-numeric field fails with an error matching ErrMalformedPoint.
//
// # Concurrency
//
// Point3D holds no shared state; concurrent reads are safe. Set is not
// safe for concurrent mutation.
package spatialhasher
