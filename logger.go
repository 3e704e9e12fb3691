package disposable

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Logger wraps slog.Logger with handle-specific context.
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

// WithID adds a handle ID field to the logger.
func (l *Logger) WithID(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithSize adds a buffer size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogAcquire logs a handle construction.
func (l *Logger) LogAcquire(ctx context.Context, id uint64, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "acquire failed",
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "acquire completed",
			"id", id,
			"size", size,
		)
	}
}

// LogRelease logs an explicit release.
func (l *Logger) LogRelease(ctx context.Context, id uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "release failed",
			"id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "release completed",
			"id", id,
		)
	}
}

// LogFallback logs a handle that became unreachable without being released.
// stack is the acquisition call stack, if it was captured.
func (l *Logger) LogFallback(ctx context.Context, id uint64, stack []uintptr, err error) {
	args := []any{"id", id}
	if len(stack) > 0 {
		args = append(args, "acquired_at", formatStack(stack))
	}

	if err != nil {
		l.ErrorContext(ctx, "fallback release failed", append(args, "error", err)...)
	} else {
		l.WarnContext(ctx, "handle became unreachable without being released", args...)
	}
}

func formatStack(pcs []uintptr) string {
	var b strings.Builder

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)

		if !more {
			break
		}
	}

	return b.String()
}
