package kdpoint

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/kdpoint/geom"
)

// Logger wraps slog.Logger with kdpoint-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(b Backend) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", b.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, p geom.Point, created bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"point", p.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"point", p.String(),
			"created", created,
		)
	}
}

// LogBatchInsert logs a batch insert operation.
func (l *Logger) LogBatchInsert(ctx context.Context, count, created int, err error) {
	bl := l.WithCount(count)
	if err != nil {
		bl.ErrorContext(ctx, "batch insert failed", "error", err)
		return
	}
	bl.InfoContext(ctx, "batch insert completed",
		"created", created,
		"updated", count-created,
	)
}

// LogRange logs a range query.
func (l *Logger) LogRange(ctx context.Context, r geom.Rect, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "range failed",
			"rect", r.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "range completed",
			"rect", r.String(),
			"results", found,
		)
	}
}

// LogNearest logs a nearest-neighbour query.
func (l *Logger) LogNearest(ctx context.Context, q, best geom.Point, found bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "nearest failed",
			"query", q.String(),
			"error", err,
		)
	case !found:
		l.DebugContext(ctx, "nearest on empty index",
			"query", q.String(),
		)
	default:
		l.DebugContext(ctx, "nearest completed",
			"query", q.String(),
			"nearest", best.String(),
		)
	}
}

// LogSnapshot logs a snapshot save.
func (l *Logger) LogSnapshot(ctx context.Context, name string, entries int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"entries", entries,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a snapshot restore.
func (l *Logger) LogLoad(ctx context.Context, name string, entries, height int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"name", name,
			"entries", entries,
			"height", height,
		)
	}
}
