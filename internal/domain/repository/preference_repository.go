package repository

import (
	"context"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPreferenceNotFound is returned when the user has no preference row.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository stores notification opt-ins.
type PreferenceRepository interface {
	FindPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpsertPreference writes both flags for the user.
	UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error

	// DisableProximity clears proximityNotificationsEnabled. A missing row is not an error.
	DisableProximity(ctx context.Context, userID uuid.UUID) error
}
