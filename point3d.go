package spatialhasher

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"strconv"
)

// PointSize is the number of bytes a point contributes to a hash: three
// 64-bit IEEE-754 bit patterns.
const PointSize = 24

// Point3D is a point in three-dimensional space.
//
// It is a plain value: assignment copies all three coordinates and the copy
// shares nothing with the original. Any float64 is accepted, including NaN,
// the infinities and negative zero.
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// New returns the point (x, y, z).
func New(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Key is the exact bit identity of a point: the IEEE-754 bit patterns of
// X, Y and Z. Unlike Point3D itself, Key is safe to use as a map key when
// coordinates may be NaN or signed zeros.
type Key [3]uint64

// Key returns the bit identity of p.
func (p Point3D) Key() Key {
	return Key{math.Float64bits(p.X), math.Float64bits(p.Y), math.Float64bits(p.Z)}
}

// Point reconstructs the point with exactly these bit patterns.
func (k Key) Point() Point3D {
	return Point3D{
		X: math.Float64frombits(k[0]),
		Y: math.Float64frombits(k[1]),
		Z: math.Float64frombits(k[2]),
	}
}

// String returns the three bit patterns as hex words separated by colons.
func (k Key) String() string {
	return fmt.Sprintf("%016x:%016x:%016x", k[0], k[1], k[2])
}

// Equal reports whether p and o have identical bit patterns on every axis.
//
// This is the equality that matches WriteHash: 0 and -0 differ, and a NaN
// equals a NaN with the same payload. Use == for IEEE numeric comparison.
func (p Point3D) Equal(o Point3D) bool {
	return p.Key() == o.Key()
}

// WriteHash feeds the bit patterns of X, Y and Z, in that order, into h as
// three little-endian 64-bit words.
//
// The hashing algorithm is entirely up to h.
func (p Point3D) WriteHash(h hash.Hash) {
	var buf [PointSize]byte
	p.put(buf[:])
	_, _ = h.Write(buf[:]) // hash.Hash.Write never returns an error
}

// Sum64 resets h, feeds p into it and returns the digest.
func (p Point3D) Sum64(h hash.Hash64) uint64 {
	h.Reset()
	p.WriteHash(h)
	return h.Sum64()
}

// AppendBinary appends the 24-byte form of p (the bytes WriteHash feeds) to b.
func (p Point3D) AppendBinary(b []byte) ([]byte, error) {
	var buf [PointSize]byte
	p.put(buf[:])
	return append(b, buf[:]...), nil
}

// MarshalBinary returns the 24-byte form of p.
func (p Point3D) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, PointSize))
}

// UnmarshalBinary decodes a point from exactly 24 bytes.
func (p *Point3D) UnmarshalBinary(data []byte) error {
	if len(data) != PointSize {
		return fmt.Errorf("%w: binary form must be %d bytes, got %d", ErrMalformedPoint, PointSize, len(data))
	}
	p.X = math.Float64frombits(binary.LittleEndian.Uint64(data[0:8]))
	p.Y = math.Float64frombits(binary.LittleEndian.Uint64(data[8:16]))
	p.Z = math.Float64frombits(binary.LittleEndian.Uint64(data[16:24]))
	return nil
}

// String returns "(x, y, z)" using the shortest exact formatting.
func (p Point3D) String() string {
	b := make([]byte, 0, 48)
	b = append(b, '(')
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, p.Z, 'g', -1, 64)
	b = append(b, ')')
	return string(b)
}

func (p Point3D) put(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(p.Z))
}
