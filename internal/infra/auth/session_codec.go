// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	sessionKeyInfo = "huntlog/session/v1"
	sessionKeySize = 32
	tokenSeparator = "."
)

// Verification failures. Callers collapse all of them to an anonymous caller;
// they stay distinct for logging.
var (
	ErrTokenMalformed    = errors.New("session token malformed")
	ErrSignatureMismatch = errors.New("session signature mismatch")
	ErrSessionIncomplete = errors.New("session payload incomplete")
)

var tokenEncoding = base64.RawURLEncoding.Strict()

// sessionCodec signs "payload.signature" tokens with HMAC-SHA256 over the
// base64url payload, keyed by a subkey derived from the configured secret.
type sessionCodec struct {
	key    []byte
	method jwt.SigningMethod
}

// NewSessionCodec is the constructor for sessionCodec.
func NewSessionCodec(cfg *config.Config) (service.SessionCodec, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	key, err := DeriveKey(cfg.SecretKey.Session, sessionKeyInfo)
	if err != nil {
		return nil, err
	}

	return &sessionCodec{
		key:    key,
		method: jwt.SigningMethodHS256,
	}, nil
}

// DeriveKey expands secret into a purpose-bound 32-byte key with HKDF-SHA256.
func DeriveKey(secret, info string) ([]byte, error) {
	key := make([]byte, sessionKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, errors.Wrap(err, "derive key")
	}

	return key, nil
}

func (c *sessionCodec) Issue(session *entity.Session) (string, error) {
	if session == nil || session.SubjectID.IsZero() {
		return "", ErrSessionIncomplete
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}

	payload := tokenEncoding.EncodeToString(raw)
	signature, err := c.method.Sign(payload, c.key)
	if err != nil {
		return "", errors.Wrap(err, "sign session")
	}

	return payload + tokenSeparator + tokenEncoding.EncodeToString(signature), nil
}

func (c *sessionCodec) Verify(token string) (*entity.Session, error) {
	payload, encodedSig, ok := strings.Cut(token, tokenSeparator)
	if !ok || payload == "" || encodedSig == "" || strings.Contains(encodedSig, tokenSeparator) {
		return nil, ErrTokenMalformed
	}

	signature, err := tokenEncoding.DecodeString(encodedSig)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	// HMAC verification compares in constant time.
	if err := c.method.Verify(payload, signature, c.key); err != nil {
		return nil, ErrSignatureMismatch
	}

	raw, err := tokenEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, ErrTokenMalformed
	}
	if session.SubjectID.IsZero() || session.ExpiresAt == 0 {
		return nil, ErrSessionIncomplete
	}

	return &session, nil
}
