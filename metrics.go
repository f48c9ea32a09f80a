package spatialhasher

import "sync/atomic"

// MetricsCollector defines an interface for collecting Set metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add. duplicate is true when the point
	// was already present and the set did not change.
	RecordAdd(duplicate bool)

	// RecordRemove is called after each Remove. found is false when the
	// point was not in the set.
	RecordRemove(found bool)

	// RecordDedup is called after each Dedup with the input size and the
	// number of points kept.
	RecordDedup(in, kept int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)       {}
func (NoopMetricsCollector) RecordRemove(bool)    {}
func (NoopMetricsCollector) RecordDedup(int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	AddCount       atomic.Int64
	DuplicateCount atomic.Int64
	RemoveCount    atomic.Int64
	RemoveMisses   atomic.Int64
	DedupCount     atomic.Int64
	DedupInput     atomic.Int64
	DedupKept      atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duplicate bool) {
	b.AddCount.Add(1)
	if duplicate {
		b.DuplicateCount.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	b.RemoveCount.Add(1)
	if !found {
		b.RemoveMisses.Add(1)
	}
}

// RecordDedup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDedup(in, kept int) {
	b.DedupCount.Add(1)
	b.DedupInput.Add(int64(in))
	b.DedupKept.Add(int64(kept))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		DuplicateCount: b.DuplicateCount.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveMisses:   b.RemoveMisses.Load(),
		DedupCount:     b.DedupCount.Load(),
		DedupInput:     b.DedupInput.Load(),
		DedupKept:      b.DedupKept.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount       int64
	DuplicateCount int64
	RemoveCount    int64
	RemoveMisses   int64
	DedupCount     int64
	DedupInput     int64
	DedupKept      int64
}
