package pkmeans

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with pkmeans-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInit logs the initial-center selection.
func (l *Logger) LogInit(ctx context.Context, centers []int, elapsed time.Duration) {
	l.DebugContext(ctx, "initial centers selected",
		"centers", centers,
		"elapsed", elapsed,
	)
}

// LogIteration logs a finished assign/recompute iteration.
func (l *Logger) LogIteration(ctx context.Context, iteration, moved int, assign, recompute time.Duration) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"moved", moved,
		"assign", assign,
		"recompute", recompute,
	)
}

// LogProgress logs a periodic progress line for long runs.
func (l *Logger) LogProgress(ctx context.Context, iteration, maxIterations, moved int) {
	l.InfoContext(ctx, "clustering in progress",
		"iteration", iteration,
		"max_iterations", maxIterations,
		"moved", moved,
	)
}

// LogRun logs the outcome of a run.
func (l *Logger) LogRun(ctx context.Context, iterations int, state State, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"iterations", iterations,
			"state", state.String(),
			"elapsed", elapsed,
		)
	}
}
