package tracker

import (
	"context"
	"log/slog"
	"os"

	"civicradar/internal/domain/entity"
	"civicradar/internal/util"
)

// TrackFilePermission grants access when the replay track is readable.
type TrackFilePermission struct {
	Path string
}

func (p TrackFilePermission) Request(context.Context) (bool, error) {
	if p.Path == "" {
		return false, ErrLocationUnavailable
	}

	info, err := os.Stat(p.Path)
	if err != nil || info.IsDir() {
		return false, ErrLocationUnavailable
	}

	return true, nil
}

// StaticPermission answers with a fixed decision.
type StaticPermission bool

func (p StaticPermission) Request(context.Context) (bool, error) {
	return bool(p), nil
}

// LogAlerter prints alerts through slog, for headless agents.
type LogAlerter struct {
	Logger *slog.Logger
}

func (a LogAlerter) Alert(ctx context.Context, region entity.GeofenceRegion, distanceMeters float64) error {
	a.Logger.InfoContext(ctx, "Nearby civic issue",
		slog.String("region_id", region.ID.String()),
		slog.String("experience_id", region.ExperienceID.String()),
		slog.String("title", region.Title),
		slog.String("distance", util.FormatDistance(distanceMeters)),
	)

	return nil
}
