package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"huntlog/internal/delivery/api/response"
	deliverycontext "huntlog/internal/delivery/context"
	"huntlog/internal/domain/service"
	"huntlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const feedHeartbeat = 25 * time.Second

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	HuntUC     usecase.HuntUsecase
	Subscriber service.ChangeFeedSubscriber
	Logger     *slog.Logger
}

// FeedHandler streams the durable change feed of one hunt as server-sent events.
type FeedHandler struct {
	huntUC     usecase.HuntUsecase
	subscriber service.ChangeFeedSubscriber
	logger     *slog.Logger
	heartbeat  time.Duration
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		huntUC:     params.HuntUC,
		subscriber: params.Subscriber,
		logger:     params.Logger,
		heartbeat:  feedHeartbeat,
	}
}

// Stream holds the connection open until the viewer leaves. Each event only
// tells the viewer to refetch the encounter list.
func (h *FeedHandler) Stream(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	ctx := c.Request().Context()
	if _, err := h.huntUC.GetHunt(ctx, huntID); err != nil {
		return response.HandleAppError(c, err)
	}

	events, cancel := h.subscriber.Subscribe(huntID)
	defer cancel()

	// The server write timeout would otherwise cut the stream.
	_ = http.NewResponseController(c.Response().Writer).SetWriteDeadline(time.Time{})

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, open := <-events:
			if !open {
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Error("Failed to encode change event", slog.Any("error", err))

				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Action, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
