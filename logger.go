package statvec

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/statvec/engine"
	"github.com/hupe1980/statvec/model"
)

// Logger wraps slog.Logger with statvec-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOp adds the operator symbol to the logger.
func (l *Logger) WithOp(op engine.Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.Symbol()),
	}
}

// WithKind adds an element kind field to the logger.
func (l *Logger) WithKind(k model.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogBinary logs a binary operation.
func (l *Logger) LogBinary(ctx context.Context, op engine.Op, kind model.Kind, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "binary operation failed",
			"op", op.Symbol(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "binary operation completed",
			"op", op.Symbol(),
			"kind", kind.String(),
			"length", length,
		)
	}
}

// LogUnary logs a unary operation.
func (l *Logger) LogUnary(ctx context.Context, op engine.Op, kind model.Kind, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "unary operation failed",
			"op", op.Symbol(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "unary operation completed",
			"op", op.Symbol(),
			"kind", kind.String(),
			"length", length,
		)
	}
}

// LogForeign logs an off-heap allocation.
func (l *Logger) LogForeign(ctx context.Context, kind model.Kind, length int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "foreign allocation failed",
			"kind", kind.String(),
			"length", length,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "foreign allocation completed",
			"kind", kind.String(),
			"length", length,
			"bytes", bytes,
		)
	}
}

// LogWarning logs an engine warning. suppressed counts warnings dropped by
// the log throttle since the last logged one.
func (l *Logger) LogWarning(ctx context.Context, w engine.Warning, suppressed int64) {
	l.WarnContext(ctx, w.String(),
		"op", w.Op.Symbol(),
		"suppressed", suppressed,
	)
}
