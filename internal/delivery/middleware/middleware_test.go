package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"huntlog/config"
	deliverycontext "huntlog/internal/delivery/context"
	domainerrors "huntlog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantKeep bool
	}{
		{name: "keeps well-formed id", inbound: "req-01HZY3K9Q2", wantKeep: true},
		{name: "mints when missing", inbound: ""},
		{name: "replaces injected value", inbound: "abc\nlevel=ERROR msg=forged"},
		{name: "replaces oversized value", inbound: string(bytes.Repeat([]byte("a"), 65))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				seen = deliverycontext.RequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, buf.String(), "request_id="+seen)
			if tt.wantKeep {
				assert.Equal(t, tt.inbound, seen)
			} else {
				assert.NotEqual(t, tt.inbound, seen)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		want    string
	}{
		{
			name:    "quiet success outside debug",
			path:    "/api/v1/hunts/:huntId",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			want:    "",
		},
		{
			name:    "success in debug",
			debug:   true,
			path:    "/api/v1/hunts/:huntId",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			want:    "level=DEBUG",
		},
		{
			name:    "app error keeps its status",
			path:    "/api/v1/hunts/:huntId/encounters",
			handler: func(echo.Context) error { return domainerrors.SlotTaken(3) },
			want:    "status=409",
		},
		{
			name:    "health is never logged",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetPath(tt.path)

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "route="+tt.path)
		})
	}
}
