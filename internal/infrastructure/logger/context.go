package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or the global one.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return L()
}

// WithAttrs derives a logger with args from the one in ctx and stores it back.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	return ContextWithLogger(ctx, FromContext(ctx).With(args...))
}

// WithOperation tags records with the operation name and a short id unique to this call.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithAttrs(ctx, "operation", operation, "op_id", uuid.NewString()[:8])
}

func WithShape(ctx context.Context, shapeType, shapeID string) context.Context {
	return WithAttrs(ctx, "shape_type", shapeType, "shape_id", shapeID)
}
