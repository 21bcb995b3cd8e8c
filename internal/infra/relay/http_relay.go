package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"huntlog/internal/domain/service"
	"huntlog/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	relayKeyInfo     = "huntlog/relay/v1"
	relayTokenTTL    = time.Minute
	relayTokenIssuer = "huntlog"
)

// httpRelay POSTs {room, payload} to <endpoint>/broadcast. When a relay
// secret is configured each request carries a short-lived HS256 bearer.
type httpRelay struct {
	url        string
	signingKey []byte
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPRelay creates the HTTP relay client.
func NewHTTPRelay(endpoint, secret string, timeout time.Duration, logger *slog.Logger) (service.BroadcastRelay, error) {
	var key []byte
	if secret != "" {
		derived, err := auth.DeriveKey(secret, relayKeyInfo)
		if err != nil {
			return nil, err
		}
		key = derived
	}

	return &httpRelay{
		url:        strings.TrimRight(endpoint, "/") + "/broadcast",
		signingKey: key,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (r *httpRelay) Broadcast(ctx context.Context, msg *service.RelayMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if r.signingKey != nil {
		bearer, err := r.bearer(msg.Room)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("relay returned non-success status: %d", resp.StatusCode)
	}

	r.logger.Debug("[HTTPRelay] Broadcast delivered",
		slog.String("room", msg.Room),
		slog.String("action", string(msg.Payload.Action)),
	)

	return nil
}

func (r *httpRelay) bearer(room string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    relayTokenIssuer,
		Subject:   room,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(relayTokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "sign relay token")
	}

	return signed, nil
}

// Close releases resources (no-op for HTTP client)
func (r *httpRelay) Close() error {
	return nil
}
