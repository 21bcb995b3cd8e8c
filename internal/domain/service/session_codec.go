package service

import "huntlog/internal/domain/entity"

// SessionCodec issues and verifies the tamper-evident session token.
type SessionCodec interface {
	// Issue serializes and signs the session. It never performs I/O.
	Issue(session *entity.Session) (string, error)

	// Verify returns the session or an error describing why the token was
	// rejected. Callers treat every error as an anonymous caller.
	Verify(token string) (*entity.Session, error)
}
