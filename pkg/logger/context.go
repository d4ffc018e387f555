package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// ToContext returns a copy of ctx carrying log.
func ToContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored in ctx, or slog.Default(). Never nil.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// With enriches the context logger and stores the result back:
//
//	log, ctx := logger.With(ctx, "fetch_id", id)
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	log := FromContext(ctx).With(args...)
	return log, ToContext(ctx, log)
}

func IsDebugEnabled(ctx context.Context) bool {
	return FromContext(ctx).Enabled(ctx, slog.LevelDebug)
}
