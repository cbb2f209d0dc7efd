// Command civicradar serves the location, subscription and dispatch API.
package main

import (
	"context"
	"log/slog"
	"os"

	"civicradar/config"
	"civicradar/internal/delivery"
	"civicradar/internal/delivery/api"
	"civicradar/internal/delivery/api/middleware"
	"civicradar/internal/delivery/api/router/handler"
	"civicradar/internal/infra/auth"
	logs "civicradar/internal/infra/log"
	"civicradar/internal/infra/persistence/postgres"
	"civicradar/internal/infra/pubsub"
	"civicradar/internal/infra/push"
	"civicradar/internal/infra/qrcode"
	"civicradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewReportRepository,
			postgres.NewRegionRepository,
			postgres.NewLocationRepository,
			postgres.NewPreferenceRepository,
			postgres.NewPushSubscriptionRepository,
			postgres.NewDispatchLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			push.NewPushSender,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationComposer,
			impl.NewDispatchService,
			impl.NewSubscriptionService,
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewTriggerTokenMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewSubscriptionHandler,
			handler.NewDispatchHandler,
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

				// Run the OnStop hooks before exiting
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
