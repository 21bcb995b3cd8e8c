package impl

import (
	"context"
	"testing"
	"time"

	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"
	mockService "huntlog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPropagationServiceForTest(t *testing.T) (*propagationService, *mockService.MockChangeFeedPublisher, *mockService.MockBroadcastRelay) {
	t.Helper()

	feed := mockService.NewMockChangeFeedPublisher(t)
	relay := mockService.NewMockBroadcastRelay(t)
	srv := NewPropagationService(feed, relay, newTestConfig(), newDiscardLogger()).(*propagationService)

	return srv, feed, relay
}

func encounterEvent() *entity.ChangeEvent {
	huntID := uuid.New()
	encounter := entity.NewEncounter(huntID, 3, 25, ownerID, time.Now())

	return &entity.ChangeEvent{
		Action:      entity.ChangeEncounterAdded,
		HuntID:      huntID,
		OwnerID:     ownerID,
		EncounterID: &encounter.ID,
		OccurredAt:  time.Now(),
		Encounter:   encounter,
	}
}

func TestPropagationService_FeedThenRelay(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := encounterEvent()

	feed.EXPECT().Publish(mock.Anything, event).Return(nil).Once()
	relay.EXPECT().
		Broadcast(mock.Anything, mock.AnythingOfType("*service.RelayMessage")).
		Run(func(_ context.Context, msg *service.RelayMessage) {
			assert.Equal(t, ownerID.String(), msg.Room)
			assert.Equal(t, entity.ChangeEncounterAdded, msg.Payload.Action)
			assert.Equal(t, event.HuntID.String(), msg.Payload.HuntID)
			assert.Same(t, event.Encounter, msg.Payload.Encounter)
		}).
		Return(nil).
		Once()

	srv.Propagate(context.Background(), event)

	require.NoError(t, srv.Wait(context.Background()))
}

func TestPropagationService_HuntActionsUseHuntRoom(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := &entity.ChangeEvent{Action: entity.ChangeHuntStatusChanged, HuntID: uuid.New(), OwnerID: ownerID}

	feed.EXPECT().Publish(mock.Anything, event).Return(nil)
	relay.EXPECT().
		Broadcast(mock.Anything, mock.MatchedBy(func(msg *service.RelayMessage) bool {
			return msg.Room == event.HuntID.String() && msg.Payload.Encounter == nil
		})).
		Return(nil)

	srv.Propagate(context.Background(), event)

	require.NoError(t, srv.Wait(context.Background()))
}

func TestPropagationService_FailuresAreSwallowed(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := encounterEvent()

	feed.EXPECT().Publish(mock.Anything, event).Return(errors.New("connection refused"))
	relay.EXPECT().Broadcast(mock.Anything, mock.Anything).Return(errors.New("relay returned non-success status: 502"))

	assert.NotPanics(t, func() {
		srv.Propagate(context.Background(), event)
	})

	require.NoError(t, srv.Wait(context.Background()))
}

func TestPropagationService_RelayOutlivesRequest(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := encounterEvent()

	ctx, cancel := context.WithCancel(context.Background())

	feed.EXPECT().Publish(mock.Anything, event).Return(nil)
	relay.EXPECT().
		Broadcast(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.RelayMessage) error {
			assert.NoError(t, ctx.Err())

			return nil
		})

	cancel()
	srv.Propagate(ctx, event)

	require.NoError(t, srv.Wait(context.Background()))
}

func TestPropagationService_WaitHonorsContext(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := encounterEvent()
	release := make(chan struct{})

	feed.EXPECT().Publish(mock.Anything, event).Return(nil)
	relay.EXPECT().
		Broadcast(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.RelayMessage) error {
			<-release

			return nil
		})

	srv.Propagate(context.Background(), event)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, srv.Wait(ctx))

	close(release)
	require.NoError(t, srv.Wait(context.Background()))
}

func TestPropagationService_FeedAndRelayUseOwnDeadlines(t *testing.T) {
	srv, feed, relay := newPropagationServiceForTest(t)
	event := encounterEvent()
	start := time.Now()

	// newTestConfig gives the feed 3s and the relay 1s.
	feed.EXPECT().
		Publish(mock.Anything, event).
		Run(func(ctx context.Context, _ *entity.ChangeEvent) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, start.Add(3*time.Second), deadline, 500*time.Millisecond)
		}).
		Return(nil)
	relay.EXPECT().
		Broadcast(mock.Anything, mock.AnythingOfType("*service.RelayMessage")).
		Run(func(ctx context.Context, _ *service.RelayMessage) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, start.Add(time.Second), deadline, 500*time.Millisecond)
		}).
		Return(nil)

	srv.Propagate(context.Background(), event)

	require.NoError(t, srv.Wait(context.Background()))
}
