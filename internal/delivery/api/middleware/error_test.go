package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"huntlog/internal/delivery/api/response"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{
			name:       "slot taken",
			err:        errors.WithStack(domainerrors.SlotTaken(4)),
			wantStatus: http.StatusConflict,
			wantCode:   "SLOT_TAKEN",
		},
		{
			name:       "unauthenticated",
			err:        domainerrors.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantLogged: true,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unexpected",
			err:        errors.Wrap(errors.New("nil map"), "list hunts"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(buf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/hunts", nil), rec)

			m.HandleHTTPError(tt.err, c)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "conn reset")
			assert.NotContains(t, rec.Body.String(), "nil map")
			if tt.wantLogged {
				assert.Contains(t, buf.String(), "level=ERROR")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "streamed"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, "streamed", rec.Body.String())
}
