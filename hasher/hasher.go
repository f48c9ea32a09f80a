package hasher

import (
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"hash/fnv"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// ErrUnknownAlgorithm is returned for an algorithm name that is not registered.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithm is the stable name of a hash algorithm.
type Algorithm string

const (
	// FNV64a is 64-bit FNV-1a; digests are stable across processes.
	FNV64a Algorithm = "fnv64a"
	// XXHash is 64-bit xxHash; digests are stable across processes.
	XXHash Algorithm = "xxhash"
	// MapHash is hash/maphash keyed by a per-process random seed.
	MapHash Algorithm = "maphash"
	// CRC32C is the 32-bit Castagnoli CRC.
	CRC32C Algorithm = "crc32c"
)

// Algorithms lists every registered algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{FNV64a, XXHash, MapHash, CRC32C}
}

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// processSeed keys every MapHash instance in this process.
var processSeed = maphash.MakeSeed()

// New returns a fresh accumulator for a.
func New(a Algorithm) (hash.Hash, error) {
	if a == CRC32C {
		return NewCRC32C(), nil
	}
	h, err := New64(a)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// New64 returns a fresh 64-bit accumulator for a.
func New64(a Algorithm) (hash.Hash64, error) {
	switch a {
	case FNV64a:
		return fnv.New64a(), nil
	case XXHash:
		return xxhash.New(), nil
	case MapHash:
		return NewMapHash(processSeed), nil
	case CRC32C:
		return nil, fmt.Errorf("%w: %s is not a 64-bit algorithm", ErrUnknownAlgorithm, a)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
}

// NewMapHash returns a maphash accumulator keyed by seed.
//
// Digests differ between seeds, so only compare values produced with the same seed.
func NewMapHash(seed maphash.Seed) *maphash.Hash {
	var h maphash.Hash
	h.SetSeed(seed)
	return &h
}

// Checksum computes the CRC32-Castagnoli checksum of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}
