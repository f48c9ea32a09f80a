package spatialhasher

import (
	"context"
	"iter"
	"maps"
)

// Set is a hash-based collection of distinct points.
//
// Membership uses bit-pattern identity (see Point3D.Equal), so 0 and -0 are
// different members and a NaN coordinate matches only the identical NaN.
// A Set is not safe for concurrent mutation.
type Set struct {
	points  map[Key]Point3D
	metrics MetricsCollector
	logger  *Logger
}

// NewSet creates an empty Set.
func NewSet(optFns ...Option) *Set {
	o := applyOptions(optFns)
	return &Set{
		points:  make(map[Key]Point3D, o.capacity),
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
}

// Add inserts p and reports whether it was not already present.
func (s *Set) Add(p Point3D) bool {
	k := p.Key()
	_, dup := s.points[k]
	if !dup {
		s.points[k] = p
	}
	s.metrics.RecordAdd(dup)
	s.logger.LogAdd(context.Background(), p, !dup, len(s.points))
	return !dup
}

// Contains reports whether p is a member.
func (s *Set) Contains(p Point3D) bool {
	_, ok := s.points[p.Key()]
	return ok
}

// Remove deletes p and reports whether it was present.
func (s *Set) Remove(p Point3D) bool {
	k := p.Key()
	_, found := s.points[k]
	if found {
		delete(s.points, k)
	}
	s.metrics.RecordRemove(found)
	s.logger.LogRemove(context.Background(), p, found, len(s.points))
	return found
}

// Len returns the number of distinct points.
func (s *Set) Len() int {
	return len(s.points)
}

// All iterates over the members in unspecified order.
func (s *Set) All() iter.Seq[Point3D] {
	return maps.Values(s.points)
}

// Points returns the members in unspecified order.
func (s *Set) Points() []Point3D {
	out := make([]Point3D, 0, len(s.points))
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Dedup returns points without bit-identical repeats, keeping the first
// occurrence of each and preserving input order. The input is not modified.
func Dedup(points []Point3D, optFns ...Option) []Point3D {
	o := applyOptions(optFns)

	seen := make(map[Key]struct{}, len(points))
	out := make([]Point3D, 0, len(points))
	for _, p := range points {
		k := p.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	o.metricsCollector.RecordDedup(len(points), len(out))
	o.logger.LogDedup(context.Background(), len(points), len(out))
	return out
}
