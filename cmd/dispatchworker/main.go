// Command dispatchworker consumes report-created events pushed by Pub/Sub
// and runs the proximity dispatch for each.
package main

import (
	"context"
	"log/slog"
	"os"

	"civicradar/config"
	"civicradar/internal/delivery"
	"civicradar/internal/delivery/worker"
	"civicradar/internal/delivery/worker/handler"
	logs "civicradar/internal/infra/log"
	"civicradar/internal/infra/persistence/postgres"
	"civicradar/internal/infra/pubsub"
	"civicradar/internal/infra/push"
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
			postgres.NewLocationRepository,
			postgres.NewPushSubscriptionRepository,
			postgres.NewDispatchLogRepository,
		),
	)
}

// The dispatcher also enqueues, so the worker carries a publisher even though
// it only consumes.
func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			push.NewPushSender,
			impl.NewNotificationComposer,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
