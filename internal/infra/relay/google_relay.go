package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"huntlog/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubRelay publishes relay messages to a Pub/Sub topic; the room is
// an attribute so subscribers can filter.
type googlePubSubRelay struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubRelay creates a relay backed by Google Pub/Sub
func NewGooglePubSubRelay(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.BroadcastRelay, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubRelay{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (r *googlePubSubRelay) Broadcast(ctx context.Context, msg *service.RelayMessage) error {
	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	result := r.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"room":   msg.Room,
			"action": string(msg.Payload.Action),
		},
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	r.logger.Debug("[GooglePubSubRelay] Broadcast published",
		slog.String("room", msg.Room),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (r *googlePubSubRelay) Close() error {
	if r.publisher != nil {
		r.publisher.Stop()
	}
	if r.client != nil {
		return errors.WithStack(r.client.Close())
	}

	return nil
}
