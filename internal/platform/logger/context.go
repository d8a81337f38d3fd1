package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(contextKey{}).(*slog.Logger)
	return l
}

// FromContextOrDefault returns the logger stored in ctx, falling back to def
// and finally to slog.Default().
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if l := FromContext(ctx); l != nil {
		return l
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
