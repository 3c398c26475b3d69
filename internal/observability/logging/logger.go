// Package logging builds the slog loggers used across the catalog binaries
// and threads request identity through log entries.
package logging

import (
	"context"
	"log/slog"
	"os"

	"fresh-catalog/internal/handler/http/requestid"
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON logger writing to stdout. The level comes from
// LOG_LEVEL; source locations are attached when the level is debug so
// production logs stay compact.
func NewLogger() *slog.Logger {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
}

// NewTextLogger returns a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// WithRequestID attaches the request ID carried by ctx, if any, so every
// entry for one request shares a correlatable field.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := requestid.FromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With(slog.String("request_id", id))
}

type ctxKey struct{}

// IntoContext stores a logger in the context for layers that have no other
// channel to receive one.
func IntoContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by IntoContext, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
