package handler

import (
	"log/slog"
	"net/http"
	"time"

	"huntlog/config"
	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/response"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	oauthStateCookie = "huntlog_oauth_state"
	oauthStateMaxAge = 10 * time.Minute
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	CredentialUC      usecase.CredentialUsecase
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
	Logger            *slog.Logger
}

// AuthHandler runs the provider login flow and manages the session cookie.
type AuthHandler struct {
	credentialUC usecase.CredentialUsecase
	sessions     *middleware.SessionMiddleware
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		credentialUC: params.CredentialUC,
		sessions:     params.SessionMiddleware,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// MeResponse is the public view of a session. Provider tokens never leave the cookie.
type MeResponse struct {
	SubjectID     entity.SubjectID `json:"subject_id"`
	SubjectHandle string           `json:"subject_handle"`
	ExpiresAt     time.Time        `json:"expires_at"`
}

// Login redirects to the provider's consent page.
func (h *AuthHandler) Login(c echo.Context) error {
	out, err := h.credentialUC.BeginLogin(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setStateCookie(c, out.State, int(oauthStateMaxAge/time.Second))

	return c.Redirect(http.StatusTemporaryRedirect, out.RedirectURL)
}

// Callback completes the login and sets the session cookie.
func (h *AuthHandler) Callback(c echo.Context) error {
	var expected string
	if cookie, err := c.Cookie(oauthStateCookie); err == nil {
		expected = cookie.Value
	}
	h.setStateCookie(c, "", -1)

	out, err := h.credentialUC.CompleteLogin(c.Request().Context(), usecase.CompleteLoginInput{
		Code:          c.QueryParam("code"),
		State:         c.QueryParam("state"),
		ExpectedState: expected,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.sessions.SetSessionCookie(c, out.Token, out.Session)

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie. It succeeds for anonymous callers too.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me returns the signed-in caller.
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.GetSession(c)
	if session == nil {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, MeResponse{
		SubjectID:     session.SubjectID,
		SubjectHandle: session.SubjectHandle,
		ExpiresAt:     time.Unix(session.ExpiresAt, 0).UTC(),
	})
}

func (h *AuthHandler) setStateCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    value,
		Path:     "/api/v1/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
