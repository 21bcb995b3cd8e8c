package entity

import "time"

// Session is the caller identity reconstructed from the signed cookie on every
// request. A nil *Session means the caller is anonymous.
type Session struct {
	SubjectID     SubjectID `json:"sub"`
	SubjectHandle string    `json:"handle"`
	AccessToken   string    `json:"at,omitempty"`
	RefreshToken  string    `json:"rt,omitempty"`
	// ExpiresAt is the access token expiry in epoch seconds.
	ExpiresAt int64 `json:"exp"`
}

// Expired reports whether the access token lifetime has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return now.Unix() >= s.ExpiresAt
}

// HasRefreshToken reports whether the session can be renewed with the provider.
func (s *Session) HasRefreshToken() bool {
	return s.RefreshToken != ""
}

// HasLiveAccessToken reports whether provider calls may be made on the caller's behalf.
func (s *Session) HasLiveAccessToken(now time.Time) bool {
	return s.AccessToken != "" && !s.Expired(now)
}

// Remaining returns the remaining access token lifetime, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := time.Unix(s.ExpiresAt, 0).Sub(now)
	if remaining < 0 {
		return 0
	}

	return remaining
}
