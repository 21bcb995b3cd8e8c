// Package relay implements the best-effort broadcast relay transports.
package relay

import (
	"context"
	"log/slog"

	"huntlog/config"
	"huntlog/internal/domain/constants"
	"huntlog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopRelay is used when no relay is configured.
type noopRelay struct {
	logger *slog.Logger
}

func (r *noopRelay) Broadcast(_ context.Context, msg *service.RelayMessage) error {
	r.logger.Debug("[NoopRelay] Broadcast disabled, skipping",
		slog.String("room", msg.Room),
		slog.String("action", string(msg.Payload.Action)),
	)

	return nil
}

func (r *noopRelay) Close() error {
	return nil
}

// RelayParams holds dependencies for BroadcastRelay, injected by Fx
type RelayParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBroadcastRelay creates a BroadcastRelay based on configuration
func NewBroadcastRelay(params RelayParams) (service.BroadcastRelay, error) {
	cfg := params.Config.Relay
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Relay not configured, using no-op relay")

		return &noopRelay{logger: logger}, nil
	}

	var relay service.BroadcastRelay
	var err error

	switch cfg.Provider {
	case constants.RelayProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http relay")
		}
		logger.Info("Using HTTP broadcast relay", slog.String("endpoint", cfg.Endpoint))

		relay, err = NewHTTPRelay(cfg.Endpoint, params.Config.SecretKey.Relay, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}

	case constants.RelayProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google relay")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google relay")
		}
		logger.Info("Using Google Pub/Sub relay",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		relay, err = NewGooglePubSubRelay(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.RelayProviderRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis URL is required for redis relay")
		}
		logger.Info("Using Redis broadcast relay", slog.String("channel_prefix", cfg.ChannelPrefix))

		relay, err = NewRedisRelay(cfg.RedisURL, cfg.ChannelPrefix, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown relay provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing broadcast relay")

			return relay.Close()
		},
	})

	return relay, nil
}
