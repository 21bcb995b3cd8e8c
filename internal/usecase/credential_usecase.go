// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"
)

// --- Input DTOs ---

// CompleteLoginInput carries the provider callback parameters together with
// the state that was stored in the caller's browser when the login began.
type CompleteLoginInput struct {
	Code          string
	State         string
	ExpectedState string
}

// --- Output DTOs ---

// BeginLoginOutput is the redirect target and the CSRF state to remember.
type BeginLoginOutput struct {
	State       string
	RedirectURL string
}

// AuthenticateOutput is the verified caller. ReissuedToken is non-empty when
// the provider tokens were refreshed and the cookie has to be replaced.
type AuthenticateOutput struct {
	Session       *entity.Session
	ReissuedToken string
}

// LoginOutput is the freshly issued session and its signed token.
type LoginOutput struct {
	Session *entity.Session
	Token   string
}

// CredentialUsecase turns a session cookie into a caller identity and runs
// the provider login flow.
type CredentialUsecase interface {
	// Authenticate verifies token and refreshes an expired session when possible.
	// Every failure maps to an unauthenticated caller.
	Authenticate(ctx context.Context, token string) (*AuthenticateOutput, error)

	// RefreshIfNeeded renews the provider tokens of an expired session. It
	// reports whether the session changed.
	RefreshIfNeeded(ctx context.Context, session *entity.Session) (*entity.Session, bool, error)

	BeginLogin(ctx context.Context) (*BeginLoginOutput, error)
	CompleteLogin(ctx context.Context, input CompleteLoginInput) (*LoginOutput, error)

	// CookieMaxAge is the lifetime to give the session cookie at now.
	CookieMaxAge(session *entity.Session, now time.Time) time.Duration
}
