package spatialhasher

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the slog.Logger used by Set and Dedup.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger for handler, or an info-level stderr text
// logger when handler is nil.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger logs JSON lines to stderr at level and above.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger logs key=value lines to stderr at level and above.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithPoint adds the coordinates of p to the logger.
func (l *Logger) WithPoint(p Point3D) *Logger {
	return &Logger{
		Logger: l.Logger.With("point", p.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs a set insertion.
func (l *Logger) LogAdd(ctx context.Context, p Point3D, added bool, size int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if added {
		l.DebugContext(ctx, "point added",
			"point", p.String(),
			"size", size,
		)
	} else {
		l.DebugContext(ctx, "duplicate point ignored",
			"point", p.String(),
			"key", p.Key().String(),
		)
	}
}

// LogRemove logs a set removal.
func (l *Logger) LogRemove(ctx context.Context, p Point3D, found bool, size int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "point removed",
		"point", p.String(),
		"found", found,
		"size", size,
	)
}

// LogDedup logs a deduplication pass.
func (l *Logger) LogDedup(ctx context.Context, in, kept int) {
	if kept < in {
		l.InfoContext(ctx, "dedup dropped duplicate points",
			"input", in,
			"kept", kept,
			"dropped", in-kept,
		)
	} else {
		l.DebugContext(ctx, "dedup completed",
			"input", in,
		)
	}
}
