// Package tracker matches device positions against geofence regions on the
// client, raises local alerts and forwards positions to the server.
package tracker

import (
	"context"
	"time"

	"civicradar/internal/domain/entity"
	"civicradar/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationUnavailable means the platform cannot provide positions at all.
var ErrLocationUnavailable = errors.New("location services unavailable")

// Location is one position fix from the device.
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64 // meters
	Timestamp time.Time
}

// PermissionProvider asks the platform for location access.
type PermissionProvider interface {
	// Request returns ErrLocationUnavailable when there is no location API.
	Request(ctx context.Context) (bool, error)
}

// LocationSource streams fixes until ctx is cancelled or the source runs dry,
// then closes the channel.
type LocationSource interface {
	Watch(ctx context.Context) (<-chan Location, error)
}

// Alerter shows a local notification for a region the device entered.
type Alerter interface {
	Alert(ctx context.Context, region entity.GeofenceRegion, distanceMeters float64) error
}

// LocationUploader sends a fix to the server.
type LocationUploader interface {
	UploadLocation(ctx context.Context, loc Location) error
}

// CooldownStore persists when each region last alerted.
type CooldownStore interface {
	Load(ctx context.Context) (map[uuid.UUID]time.Time, error)
	Save(ctx context.Context, regionID uuid.UUID, at time.Time) error
}
