package relay

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"
	"huntlog/internal/infra/auth"

	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleMessage() *service.RelayMessage {
	slot := 3

	return &service.RelayMessage{
		Room: "141981764",
		Payload: service.RelayPayload{
			Action:    entity.ChangeEncounterAdded,
			HuntID:    "0190b3c4-0000-7000-8000-000000000001",
			Encounter: &entity.Encounter{SlotNumber: &slot, EntityID: 25},
		},
	}
}

func TestHTTPRelay_PostsSignedBroadcast(t *testing.T) {
	var gotBody service.RelayMessage
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/broadcast", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	relay, err := NewHTTPRelay(srv.URL+"/", "relay-secret", time.Second, newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, relay.Broadcast(context.Background(), sampleMessage()))

	assert.Equal(t, "141981764", gotBody.Room)
	assert.Equal(t, entity.ChangeEncounterAdded, gotBody.Payload.Action)
	require.NotNil(t, gotBody.Payload.Encounter)
	assert.Equal(t, 3, gotBody.Payload.Encounter.Slot())

	require.True(t, strings.HasPrefix(gotAuth, "Bearer "))
	key, err := auth.DeriveKey("relay-secret", relayKeyInfo)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(strings.TrimPrefix(gotAuth, "Bearer "), &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.Equal(t, "141981764", claims.Subject)
	assert.Equal(t, relayTokenIssuer, claims.Issuer)
}

func TestHTTPRelay_NoSecretSendsNoBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay, err := NewHTTPRelay(srv.URL, "", time.Second, newDiscardLogger())
	require.NoError(t, err)

	assert.NoError(t, relay.Broadcast(context.Background(), sampleMessage()))
}

func TestHTTPRelay_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	relay, err := NewHTTPRelay(srv.URL, "", time.Second, newDiscardLogger())
	require.NoError(t, err)

	assert.Error(t, relay.Broadcast(context.Background(), sampleMessage()))
}

func TestHTTPRelay_UnreachableIsError(t *testing.T) {
	relay, err := NewHTTPRelay("http://127.0.0.1:1", "", 200*time.Millisecond, newDiscardLogger())
	require.NoError(t, err)

	assert.Error(t, relay.Broadcast(context.Background(), sampleMessage()))
}

func TestRedisRelay_PublishesOnRoomChannel(t *testing.T) {
	s := miniredis.RunT(t)

	relay, err := NewRedisRelay("redis://"+s.Addr(), "huntlog:", newDiscardLogger())
	require.NoError(t, err)
	defer relay.Close()

	require.NoError(t, relay.Broadcast(context.Background(), sampleMessage()))
}

func TestRedisRelay_DeliversToSubscriber(t *testing.T) {
	s := miniredis.RunT(t)

	relay, err := NewRedisRelay("redis://"+s.Addr(), "huntlog:", newDiscardLogger())
	require.NoError(t, err)
	defer relay.Close()

	rr, ok := relay.(*redisRelay)
	require.True(t, ok)

	sub := rr.client.Subscribe(context.Background(), "huntlog:141981764")
	defer sub.Close()
	_, err = sub.Receive(context.Background())
	require.NoError(t, err)

	require.NoError(t, relay.Broadcast(context.Background(), sampleMessage()))

	select {
	case msg := <-sub.Channel():
		var payload service.RelayPayload
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &payload))
		assert.Equal(t, entity.ChangeEncounterAdded, payload.Action)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestNewRedisRelay_BadURL(t *testing.T) {
	_, err := NewRedisRelay("not-a-url", "", newDiscardLogger())
	assert.Error(t, err)
}

func TestGooglePubSubRelay_PublishesWithRoomAttribute(t *testing.T) {
	srv := pstest.NewServer()
	defer srv.Close()
	t.Setenv("PUBSUB_EMULATOR_HOST", srv.Addr)

	ctx := context.Background()
	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/test-project/topics/relay"})
	require.NoError(t, err)

	relay, err := NewGooglePubSubRelay(ctx, "test-project", "relay", newDiscardLogger())
	require.NoError(t, err)
	defer relay.Close()

	require.NoError(t, relay.Broadcast(ctx, sampleMessage()))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "141981764", msgs[0].Attributes["room"])
	assert.Equal(t, string(entity.ChangeEncounterAdded), msgs[0].Attributes["action"])
}

func TestNewBroadcastRelay_SelectsProvider(t *testing.T) {
	s := miniredis.RunT(t)

	tests := []struct {
		name    string
		relay   *config.RelayConfig
		wantErr bool
		check   func(t *testing.T, r service.BroadcastRelay)
	}{
		{
			name:  "nil config is noop",
			relay: nil,
			check: func(t *testing.T, r service.BroadcastRelay) {
				assert.IsType(t, &noopRelay{}, r)
			},
		},
		{
			name:  "http",
			relay: &config.RelayConfig{Provider: "http", Endpoint: "http://relay.local", Timeout: time.Second},
			check: func(t *testing.T, r service.BroadcastRelay) {
				assert.IsType(t, &httpRelay{}, r)
			},
		},
		{
			name:  "redis",
			relay: &config.RelayConfig{Provider: "redis", RedisURL: "redis://" + s.Addr()},
			check: func(t *testing.T, r service.BroadcastRelay) {
				assert.IsType(t, &redisRelay{}, r)
			},
		},
		{name: "http without endpoint", relay: &config.RelayConfig{Provider: "http"}, wantErr: true},
		{name: "google without project", relay: &config.RelayConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", relay: &config.RelayConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			cfg := &config.Config{Relay: tt.relay}

			r, err := NewBroadcastRelay(RelayParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: cfg,
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, r)
			lc.RequireStart().RequireStop()
		})
	}
}
