package service

import (
	"context"

	"huntlog/internal/domain/entity"
)

// RelayPayload is the action descriptor viewers receive from the relay.
type RelayPayload struct {
	Action    entity.ChangeAction `json:"action"`
	HuntID    string              `json:"huntId"`
	Encounter *entity.Encounter   `json:"encounter,omitempty"`
}

// RelayMessage is one fire-and-forget broadcast keyed by room.
type RelayMessage struct {
	Room    string       `json:"room"`
	Payload RelayPayload `json:"payload"`
}

// BroadcastRelay delivers best-effort notifications to an external relay.
type BroadcastRelay interface {
	Broadcast(ctx context.Context, msg *RelayMessage) error

	// Close releases any resources held by the relay
	Close() error
}
