package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/service"
	"huntlog/internal/usecase"

	"github.com/pkg/errors"
)

// propagationService implements the PropagationUsecase interface: the durable
// feed is written inline, the relay runs on a tracked goroutine.
type propagationService struct {
	feed         service.ChangeFeedPublisher
	relay        service.BroadcastRelay
	feedTimeout  time.Duration
	relayTimeout time.Duration
	logger       *slog.Logger

	inflight sync.WaitGroup
}

// NewPropagationService is the constructor for propagationService.
func NewPropagationService(
	feed service.ChangeFeedPublisher,
	relay service.BroadcastRelay,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PropagationUsecase {
	return &propagationService{
		feed:         feed,
		relay:        relay,
		feedTimeout:  cfg.ChangeFeed.Timeout,
		relayTimeout: cfg.Relay.Timeout,
		logger:       logger,
	}
}

// Propagate never returns an error; both channels are hints to refetch.
func (srv *propagationService) Propagate(ctx context.Context, event *entity.ChangeEvent) {
	log := requestLogger(ctx, srv.logger).With(
		slog.String("action", string(event.Action)),
		slog.String("hunt_id", event.HuntID.String()),
	)

	feedCtx, cancel := detached(ctx, srv.feedTimeout)
	if err := srv.feed.Publish(feedCtx, event); err != nil {
		log.Error("Failed to publish change feed event", slog.Any("error", err))
	}
	cancel()

	msg := &service.RelayMessage{
		Room: relayRoom(event),
		Payload: service.RelayPayload{
			Action:    event.Action,
			HuntID:    event.HuntID.String(),
			Encounter: event.Encounter,
		},
	}

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()

		relayCtx, cancel := detached(ctx, srv.relayTimeout)
		defer cancel()

		if err := srv.relay.Broadcast(relayCtx, msg); err != nil {
			log.Warn("Broadcast relay failed",
				slog.String("code", domainerrors.ErrRelayUnavailable.ErrorCode()),
				slog.String("room", msg.Room),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every scheduled broadcast has finished.
func (srv *propagationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for relay broadcasts")
	}
}

// relayRoom addresses encounter changes to the owner's channel room and
// hunt-level changes to the hunt itself.
func relayRoom(event *entity.ChangeEvent) string {
	if event.Action.IsEncounterAction() {
		return event.OwnerID.String()
	}

	return event.HuntID.String()
}
