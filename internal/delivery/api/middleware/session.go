package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"huntlog/config"
	deliverycontext "huntlog/internal/delivery/context"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the session cookie into an explicit caller.
// Requests without a valid session continue as anonymous.
type SessionMiddleware struct {
	credentialUC usecase.CredentialUsecase
	cookie       *config.SessionConfig
	logger       *slog.Logger
	now          func() time.Time
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(credentialUC usecase.CredentialUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		credentialUC: credentialUC,
		cookie:       cfg.Session,
		logger:       logger,
		now:          time.Now,
	}
}

// LoadSession verifies the cookie, refreshing it when the provider tokens expired.
func (m *SessionMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookie.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		out, err := m.credentialUC.Authenticate(ctx, cookie.Value)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Continuing anonymously", slog.Any("reason", err))
			m.ClearSessionCookie(c)

			return next(c)
		}

		c.Set(sessionContextKey, out.Session)
		deliverycontext.EnrichLogger(c, m.logger, slog.String("subject_id", out.Session.SubjectID.String()))
		if out.ReissuedToken != "" {
			m.SetSessionCookie(c, out.ReissuedToken, out.Session)
		}

		return next(c)
	}
}

// RequireSession rejects anonymous callers. It must run after LoadSession.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetSession(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// SetSessionCookie writes the signed session token.
func (m *SessionMiddleware) SetSessionCookie(c echo.Context, token string, session *entity.Session) {
	maxAge := m.credentialUC.CookieMaxAge(session, m.now())

	c.SetCookie(&http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func (m *SessionMiddleware) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSession returns the caller's session, or nil for anonymous callers.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)

	return session
}
