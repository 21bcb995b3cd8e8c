// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "huntlog/internal/delivery/context"
)

// requestLogger returns a request-scoped logger if available, otherwise falls back to fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// detached bounds a dependency call by timeout without inheriting the
// request's cancellation, so a client disconnect cannot abort it halfway.
func detached(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
