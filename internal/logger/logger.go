package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

// Init initializes the global logger writing to stdout.
func Init(level string, json bool) {
	Setup(os.Stdout, level, json)
}

// Setup builds the global logger on w and installs it as the slog default.
func Setup(w io.Writer, level string, json bool) *slog.Logger {
	l := build(w, level, json)
	defaultLogger.Store(l)
	slog.SetDefault(l)
	return l
}

func build(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "project_tracker")
}

// ParseLevel maps debug/info/warn/error to a slog level. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger. Before Setup it falls back to an info
// level text logger on stdout; a concurrent Setup always wins.
func Get() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, build(os.Stdout, "info", false))
	return defaultLogger.Load()
}

// NewContext stores a request scoped logger in ctx.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithContext returns the logger stored by NewContext, or the default one.
func WithContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Get()
}

func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// Fatal logs at error level and exits
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
