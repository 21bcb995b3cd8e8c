package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"huntlog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// redisRelay PUBLISHes the payload on "<prefix><room>".
type redisRelay struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisRelay connects to redisURL and verifies the connection.
func NewRedisRelay(redisURL, prefix string, logger *slog.Logger) (service.BroadcastRelay, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "connect to redis")
	}

	return NewRedisRelayWithClient(client, prefix, logger), nil
}

// NewRedisRelayWithClient wraps an existing client.
func NewRedisRelayWithClient(client *redis.Client, prefix string, logger *slog.Logger) service.BroadcastRelay {
	return &redisRelay{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (r *redisRelay) Broadcast(ctx context.Context, msg *service.RelayMessage) error {
	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	receivers, err := r.client.Publish(ctx, r.prefix+msg.Room, data).Result()
	if err != nil {
		return errors.Wrap(err, "redis publish")
	}

	r.logger.Debug("[RedisRelay] Broadcast published",
		slog.String("room", msg.Room),
		slog.Int64("receivers", receivers),
	)

	return nil
}

func (r *redisRelay) Close() error {
	return errors.WithStack(r.client.Close())
}
