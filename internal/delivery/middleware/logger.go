package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"huntlog/config"
	deliverycontext "huntlog/internal/delivery/context"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/errors"

	"github.com/labstack/echo/v4"
)

const slowRequestThreshold = time.Second

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only failed and slow requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		skip:   map[string]struct{}{"/health": {}},
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if _, skip := m.skip[c.Path()]; !skip {
			m.logRequest(c, time.Since(start), err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	status := c.Response().Status
	if err != nil {
		// The error handler has not written the response yet.
		var appErr domainerrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.HTTPCode()
		case errors.As(err, &httpErr):
			status = httpErr.Code
		default:
			status = http.StatusInternalServerError
		}
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	case latency >= slowRequestThreshold:
		level = slog.LevelInfo
	}
	if level == slog.LevelDebug && !m.debug {
		return
	}

	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.RequestURI()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}
