package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"relay": map[string]any{
			"redisUrl":      "",
			"channelPrefix": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"changeFeed": map[string]any{
			"dsn": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "RELAY_REDISURL", want: "relay.redisUrl"},
		{envKey: "RELAY_CHANNELPREFIX", want: "relay.channelPrefix"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "CHANGEFEED_DSN", want: "changeFeed.dsn"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)
	assert.Equal(t, defaultProviderTimeout, cfg.Twitch.Timeout)
	assert.Equal(t, defaultChangeFeedChannel, cfg.ChangeFeed.Channel)
	assert.Equal(t, defaultChangeFeedTimeout, cfg.ChangeFeed.Timeout)
	assert.Equal(t, defaultMaxExcluded, cfg.Hunt.MaxExcluded)
	require.NotNil(t, cfg.Relay)
	assert.Empty(t, cfg.Relay.Provider)
	assert.Equal(t, defaultRelayTimeout, cfg.Relay.Timeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "sid", MaxAge: time.Hour},
		Relay:   &RelayConfig{Provider: "http", Timeout: 5 * time.Second},
	}
	applyDefaults(cfg)

	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 5*time.Second, cfg.Relay.Timeout)
}

func TestApplyDefaults_ClampsMaxExcludedToSchemaLimit(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		want       int
	}{
		{name: "unset", configured: 0, want: 9},
		{name: "below limit", configured: 4, want: 4},
		{name: "above limit", configured: 25, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Hunt: &HuntConfig{MaxExcluded: tt.configured}}
			applyDefaults(cfg)

			assert.Equal(t, tt.want, cfg.Hunt.MaxExcluded)
		})
	}
}
