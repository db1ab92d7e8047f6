package logging

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerContextKey   contextKey = "oficina_mecanica/logging/logger"
	operatorContextKey contextKey = "oficina_mecanica/logging/operator"
)

// AnonymousOperator is recorded when a request does not identify who performed it.
const AnonymousOperator = "ANONYMOUS"

var noopLogger = zap.NewNop()

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext retrieves the request logger, defaulting to a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// WithOperator records who performs the current request.
func WithOperator(ctx context.Context, operator string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if operator == "" {
		operator = AnonymousOperator
	}
	return context.WithValue(ctx, operatorContextKey, operator)
}

func Operator(ctx context.Context) string {
	if ctx == nil {
		return AnonymousOperator
	}
	if op, ok := ctx.Value(operatorContextKey).(string); ok && op != "" {
		return op
	}
	return AnonymousOperator
}
