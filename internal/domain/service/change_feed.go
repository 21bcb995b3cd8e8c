package service

import (
	"context"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeFeedPublisher writes a change signal to the durable feed.
type ChangeFeedPublisher interface {
	Publish(ctx context.Context, event *entity.ChangeEvent) error
}

// ChangeFeedSubscriber hands out per-hunt subscriptions on the durable feed.
type ChangeFeedSubscriber interface {
	// Subscribe returns a channel of events for huntID and a cancel func that
	// must be called to release it.
	Subscribe(huntID uuid.UUID) (<-chan *entity.ChangeEvent, func())
}
