// Package hasher provides the hash accumulators a Point3D can be fed into.
//
// A point decides only which bytes are hashed and in what order (see
// Point3D.WriteHash); the algorithm is chosen here:
//
//   - FNV64a: stdlib FNV-1a, stable across processes
//   - XXHash: github.com/cespare/xxhash/v2, stable across processes, fastest
//   - MapHash: hash/maphash with a per-process random seed, for in-memory
//     containers only
//   - CRC32C: Castagnoli CRC, hardware accelerated where available
//
// # Usage
//
//	h, _ := hasher.New64(hasher.XXHash)
//	sum := p.Sum64(h)
//
// For streaming:
//
//	h, _ := hasher.New(hasher.CRC32C)
//	p.WriteHash(h)
//	q.WriteHash(h)
//	digest := h.Sum(nil)
package hasher
