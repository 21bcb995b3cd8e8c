package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/service"
	"huntlog/internal/usecase"

	"github.com/pkg/errors"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	codec    service.SessionCodec
	provider service.IdentityProvider
	timeout  time.Duration
	maxAge   time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	codec service.SessionCodec,
	provider service.IdentityProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		codec:    codec,
		provider: provider,
		timeout:  cfg.Twitch.Timeout,
		maxAge:   cfg.Session.MaxAge,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Authenticate verifies the token and refreshes an expired session.
func (srv *credentialService) Authenticate(ctx context.Context, token string) (*usecase.AuthenticateOutput, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := srv.codec.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	refreshed, changed, err := srv.RefreshIfNeeded(ctx, session)
	if err != nil {
		return nil, err
	}

	output := &usecase.AuthenticateOutput{Session: refreshed}
	if changed {
		reissued, err := srv.codec.Issue(refreshed)
		if err != nil {
			srv.log(ctx).Error("Failed to reissue refreshed session", slog.Any("error", err))

			return nil, domainerrors.ErrUnauthenticated
		}
		output.ReissuedToken = reissued
	}

	return output, nil
}

// RefreshIfNeeded renews the provider tokens once the access token expired.
func (srv *credentialService) RefreshIfNeeded(ctx context.Context, session *entity.Session) (*entity.Session, bool, error) {
	if !session.Expired(srv.now()) {
		return session, false, nil
	}

	if !session.HasRefreshToken() {
		return nil, false, domainerrors.ErrRefreshFailed
	}

	refreshCtx, cancel := detached(ctx, srv.timeout)
	defer cancel()

	token, err := srv.provider.Refresh(refreshCtx, session.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Session refresh failed",
			slog.String("subject_id", session.SubjectID.String()),
			slog.Any("error", err),
		)

		return nil, false, domainerrors.ErrRefreshFailed
	}

	refreshed := *session
	refreshed.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	refreshed.ExpiresAt = token.ExpiresAt.Unix()

	srv.log(ctx).Debug("Session refreshed", slog.String("subject_id", session.SubjectID.String()))

	return &refreshed, true, nil
}

// BeginLogin creates the CSRF state and the provider redirect.
func (srv *credentialService) BeginLogin(_ context.Context) (*usecase.BeginLoginOutput, error) {
	state := rand.Text()

	return &usecase.BeginLoginOutput{
		State:       state,
		RedirectURL: srv.provider.AuthCodeURL(state),
	}, nil
}

// CompleteLogin exchanges the callback code and issues the session.
func (srv *credentialService) CompleteLogin(ctx context.Context, input usecase.CompleteLoginInput) (*usecase.LoginOutput, error) {
	if input.State == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return nil, domainerrors.ErrOAuthStateMismatch
	}
	if input.Code == "" {
		return nil, domainerrors.ErrOAuthFailed
	}

	providerCtx, cancel := detached(ctx, srv.timeout)
	defer cancel()

	token, err := srv.provider.ExchangeCode(providerCtx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	user, err := srv.provider.GetUser(providerCtx, token.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to load provider user", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	session := &entity.Session{
		SubjectID:     user.ID,
		SubjectHandle: user.Login,
		AccessToken:   token.AccessToken,
		RefreshToken:  token.RefreshToken,
		ExpiresAt:     token.ExpiresAt.Unix(),
	}

	signed, err := srv.codec.Issue(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("User logged in",
		slog.String("subject_id", user.ID.String()),
		slog.String("handle", user.Login),
	)

	return &usecase.LoginOutput{Session: session, Token: signed}, nil
}

// CookieMaxAge caps the cookie at the configured maximum. Without a refresh
// token the cookie cannot outlive the access token.
func (srv *credentialService) CookieMaxAge(session *entity.Session, now time.Time) time.Duration {
	if session.HasRefreshToken() {
		return srv.maxAge
	}

	return min(session.Remaining(now), srv.maxAge)
}
