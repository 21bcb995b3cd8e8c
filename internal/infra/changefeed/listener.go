package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

// Listener holds a dedicated LISTEN connection on the change channel and
// forwards every notification to the hub.
type Listener struct {
	dsn     string
	channel string
	hub     *Hub
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ListenerParams holds dependencies for Listener, injected by Fx.
type ListenerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

// NewListener builds the listener and ties it to the fx lifecycle. With no
// DSN configured it stays idle and viewers only receive relay broadcasts.
func NewListener(params ListenerParams) *Listener {
	l := &Listener{
		dsn:     params.Config.ChangeFeed.DSN,
		channel: params.Config.ChangeFeed.Channel,
		hub:     params.Hub,
		logger:  params.Logger.With(slog.String("component", "changefeed")),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if l.dsn == "" {
				l.logger.Warn("Change feed DSN not configured, LISTEN disabled")

				return nil
			}
			l.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			l.Stop()

			return nil
		},
	})

	return l
}

// Start runs the listen loop in the background until Stop.
func (l *Listener) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

// Stop cancels the loop and waits for the connection to close.
func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

func (l *Listener) run(ctx context.Context) {
	delay := minReconnectDelay

	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}

		l.logger.Warn("Change feed connection lost, reconnecting",
			slog.Any("error", err),
			slog.Duration("delay", delay),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		delay = min(delay*2, maxReconnectDelay)
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return errors.Wrap(err, "listen")
	}

	l.logger.Info("Listening for hunt changes", slog.String("channel", l.channel))

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return errors.Wrap(err, "wait for notification")
		}

		l.handle(notification.Payload)
	}
}

func (l *Listener) handle(payload string) {
	event, err := DecodeEvent(payload)
	if err != nil {
		l.logger.Warn("Dropping malformed change notification", slog.Any("error", err))

		return
	}

	delivered := l.hub.Dispatch(event)
	l.logger.Debug("Change dispatched",
		slog.String("action", string(event.Action)),
		slog.String("hunt_id", event.HuntID.String()),
		slog.Int("subscribers", delivered),
	)
}

// DecodeEvent parses a pg_notify payload.
func DecodeEvent(payload string) (*entity.ChangeEvent, error) {
	var event entity.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, errors.Wrap(err, "decode change event")
	}
	if event.Action == "" {
		return nil, errors.New("change event without action")
	}

	return &event, nil
}
