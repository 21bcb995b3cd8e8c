package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64KB"

	defaultSessionCookieName = "huntlog_session"
	defaultSessionMaxAge     = 30 * 24 * time.Hour
	defaultProviderTimeout   = 3 * time.Second
	defaultRelayTimeout      = 2 * time.Second
	defaultChangeFeedChannel = "hunt_changes"
	defaultChangeFeedTimeout = 5 * time.Second
	defaultMaxExcluded       = 9

	// maxExcludedLimit matches the excluded_entity_ids CHECK in the schema.
	maxExcludedLimit = 9
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
		Relay   string `json:"relay" yaml:"relay"`
	} `json:"secretKey" yaml:"secretKey"`

	// Twitch is the identity provider used for login and moderation lookups
	Twitch *IdentityProviderConfig `json:"twitch" yaml:"twitch"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// ChangeFeed configures the durable Postgres notification channel
	ChangeFeed *ChangeFeedConfig `json:"changeFeed" yaml:"changeFeed"`

	// Relay configures the best-effort broadcast relay
	Relay *RelayConfig `json:"relay" yaml:"relay"`

	Hunt *HuntConfig `json:"hunt" yaml:"hunt"`
}

// IdentityProviderConfig holds OAuth client credentials and API endpoints.
type IdentityProviderConfig struct {
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string      `json:"scopes" yaml:"scopes"`
	APIBaseURL   string        `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	AuthURL      string        `json:"authUrl" yaml:"authUrl"`
	TokenURL     string        `json:"tokenUrl" yaml:"tokenUrl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the session cookie.
type SessionConfig struct {
	CookieName string `json:"cookieName" yaml:"cookieName"`
	// MaxAge is the hard cap on cookie lifetime
	MaxAge time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure bool          `json:"secure" yaml:"secure"`
}

type ChangeFeedConfig struct {
	// DSN is used by the dedicated LISTEN connection
	DSN     string `json:"dsn" yaml:"dsn"`
	Channel string `json:"channel" yaml:"channel"`
	// Timeout bounds each pg_notify publish
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RelayConfig defines the broadcast relay provider
type RelayConfig struct {
	// Provider type: "http", "google" or "redis". Empty disables the relay.
	Provider string        `json:"provider" yaml:"provider"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Endpoint is the relay base URL (http provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Google Cloud project and topic (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// RedisURL and ChannelPrefix (redis provider)
	RedisURL      string `json:"redisUrl" yaml:"redisUrl"`
	ChannelPrefix string `json:"channelPrefix" yaml:"channelPrefix"`
}

type HuntConfig struct {
	MaxExcluded int `json:"maxExcluded" yaml:"maxExcluded"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override yaml, e.g. RELAY_REDISURL -> relay.redisUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}

	if cfg.Twitch == nil {
		cfg.Twitch = &IdentityProviderConfig{}
	}
	if cfg.Twitch.Timeout <= 0 {
		cfg.Twitch.Timeout = defaultProviderTimeout
	}

	if cfg.ChangeFeed == nil {
		cfg.ChangeFeed = &ChangeFeedConfig{}
	}
	if cfg.ChangeFeed.Channel == "" {
		cfg.ChangeFeed.Channel = defaultChangeFeedChannel
	}
	if cfg.ChangeFeed.Timeout <= 0 {
		cfg.ChangeFeed.Timeout = defaultChangeFeedTimeout
	}

	if cfg.Relay == nil {
		cfg.Relay = &RelayConfig{}
	}
	if cfg.Relay.Timeout <= 0 {
		cfg.Relay.Timeout = defaultRelayTimeout
	}

	if cfg.Hunt == nil {
		cfg.Hunt = &HuntConfig{}
	}
	if cfg.Hunt.MaxExcluded <= 0 {
		cfg.Hunt.MaxExcluded = defaultMaxExcluded
	}
	cfg.Hunt.MaxExcluded = min(cfg.Hunt.MaxExcluded, maxExcludedLimit)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
