package service

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"
)

// ProviderToken is an access/refresh token pair issued by the identity provider.
type ProviderToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// ProviderUser is the authenticated account behind an access token.
type ProviderUser struct {
	ID    entity.SubjectID
	Login string
}

// IdentityProvider is the client for the external OAuth identity provider.
// Every call carries the service client id.
type IdentityProvider interface {
	// AuthCodeURL builds the login redirect for the given CSRF state.
	AuthCodeURL(state string) string

	ExchangeCode(ctx context.Context, code string) (*ProviderToken, error)

	Refresh(ctx context.Context, refreshToken string) (*ProviderToken, error)

	GetUser(ctx context.Context, accessToken string) (*ProviderUser, error)

	// GetModeratedChannels lists the broadcaster ids subjectID moderates.
	GetModeratedChannels(ctx context.Context, accessToken string, subjectID entity.SubjectID) ([]entity.SubjectID, error)
}
