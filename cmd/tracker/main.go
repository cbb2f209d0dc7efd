// Command tracker replays a GeoJSON walk through the client-side geofence
// tracker: it alerts on nearby reports and uploads every fix to the API.
package main

import (
	"context"
	"log/slog"

	"civicradar/config"
	"civicradar/internal/domain/constants"
	"civicradar/internal/errors"
	"civicradar/internal/infra/kv"
	logs "civicradar/internal/infra/log"
	"civicradar/internal/tracker"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			newCooldownStore,
			newAPIClient,
			newTracker,
		),
		fx.Invoke(
			runTracker,
		),
	).Run()
}

func newCooldownStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (tracker.CooldownStore, error) {
	switch cfg.Tracker.CooldownStore {
	case constants.CooldownStoreRedis:
		client, err := kv.NewClient(kv.ClientParams{Lc: lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}

		return tracker.NewRedisCooldownStore(client, cfg.Redis.KeyPrefix), nil
	case constants.CooldownStoreMemory, "":
		return tracker.NewMemoryCooldownStore(), nil
	default:
		return nil, errors.Errorf("unknown cooldown store %q", cfg.Tracker.CooldownStore)
	}
}

func newAPIClient(cfg *config.Config) (*tracker.APIClient, error) {
	return tracker.NewAPIClient(cfg.Tracker, nil)
}

func newTracker(cfg *config.Config, logger *slog.Logger, cooldowns tracker.CooldownStore, client *tracker.APIClient) (*tracker.Tracker, error) {
	source, err := tracker.LoadGeoJSONTrack(cfg.Tracker.TrackPath, cfg.Tracker.EmitInterval)
	if err != nil {
		return nil, err
	}

	return tracker.New(tracker.Params{
		Permission:     tracker.TrackFilePermission{Path: cfg.Tracker.TrackPath},
		Source:         source,
		Alerter:        tracker.LogAlerter{Logger: logger},
		Uploader:       client,
		Cooldowns:      cooldowns,
		Logger:         logger,
		CooldownWindow: cfg.Tracker.CooldownWindow,
		Forwarder: tracker.ForwarderOptions{
			QueueSize:  cfg.Tracker.QueueSize,
			MaxRetries: cfg.Tracker.MaxRetries,
			BaseDelay:  cfg.Tracker.RetryBaseDelay,
		},
	})
}

func runTracker(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, tr *tracker.Tracker, client *tracker.APIClient) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			regions, err := client.FetchRegions(ctx)
			if err != nil {
				cancel()

				return err
			}
			tr.SetRegions(regions)
			logger.Info("Loaded geofence regions", slog.Int("count", len(regions)))

			if !tr.StartTracking(runCtx) {
				cancel()

				return errors.New("tracking could not start")
			}

			done := tr.Done()
			go func() {
				select {
				case <-done:
					logger.Info("Track finished, shutting down")
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					}
				case <-runCtx.Done():
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			tr.Close()

			return nil
		},
	})
}
