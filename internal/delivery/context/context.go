// Package context carries request-scoped values (request id, caller, logger)
// from the HTTP edge into the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	echoRequestIDKey = "request_id"
)

// GetRequestID returns the request ID stored on the echo context, or "" when
// the request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// SetRequestID stores the request ID on the echo context and the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// EnrichLogger adds attrs to the request-scoped logger for the rest of the
// request. Later middleware uses it to tag log lines with the caller.
func EnrichLogger(c echo.Context, fallback *slog.Logger, attrs ...any) {
	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(attrs...)
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}
