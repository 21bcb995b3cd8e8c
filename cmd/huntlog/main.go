package main

import (
	"context"
	"log/slog"
	"os"

	"huntlog/config"
	"huntlog/internal/delivery"
	"huntlog/internal/delivery/api"
	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/router/handler"
	"huntlog/internal/domain/service"
	"huntlog/internal/infra/auth"
	"huntlog/internal/infra/auth/twitch"
	"huntlog/internal/infra/changefeed"
	logs "huntlog/internal/infra/log"
	"huntlog/internal/infra/persistence/postgres"
	"huntlog/internal/infra/relay"
	"huntlog/internal/usecase"
	"huntlog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Listener   *changefeed.Listener
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHuntRepository,
			postgres.NewEncounterRepository,
			postgres.NewDelegateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionCodec,
			twitch.NewClient,
			relay.NewBroadcastRelay,
			postgres.NewChangeFeedPublisher,
			changefeed.NewHub,
			changefeed.NewSubscriber,
			changefeed.NewListener,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewAuthorizationService,
			newPropagationService,
			impl.NewEncounterService,
			impl.NewHuntService,
			impl.NewDelegateService,
		),
	)
}

// newPropagationService ties in-flight relay broadcasts to shutdown. Stop hooks
// run in reverse order, so this one runs after the HTTP server has drained.
func newPropagationService(
	lc fx.Lifecycle,
	feed service.ChangeFeedPublisher,
	broadcast service.BroadcastRelay,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PropagationUsecase {
	propagator := impl.NewPropagationService(feed, broadcast, cfg, logger)
	lc.Append(fx.Hook{
		OnStop: propagator.Wait,
	})

	return propagator
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewHuntHandler,
			handler.NewEncounterHandler,
			handler.NewDelegateHandler,
			handler.NewFeedHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
