package spatialhasher

import "log/slog"

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures NewSet and Dedup. WithCapacity only affects NewSet;
// Dedup sizes its lookup from the input and honors the rest.
type Option func(*options)

// WithCapacity preallocates room for n distinct points.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMetricsCollector configures a metrics collector for set operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spatialhasher.BasicMetricsCollector{}
//	s := spatialhasher.NewSet(spatialhasher.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Added: %d, Duplicates: %d\n", stats.AddCount, stats.DuplicateCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for set operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := spatialhasher.NewJSONLogger(slog.LevelDebug)
//	s := spatialhasher.NewSet(spatialhasher.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
