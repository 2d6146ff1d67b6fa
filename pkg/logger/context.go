package logger

import (
	"context"
	"log/slog"
)

type ctxKeyType struct{}

var ctxKey ctxKeyType

// With derives a context whose logger carries the given fields. Handlers
// pick it up via From, so request-scoped fields like the trace id follow
// the call chain without threading a logger through every signature.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, ctxKey, From(ctx).With(fields...))
}

// From returns the logger stored in ctx, falling back to the process-wide
// default when the context carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey).(*slog.Logger); ok {
		return l
	}
	return Default()
}
