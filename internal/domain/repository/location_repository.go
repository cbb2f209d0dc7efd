// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"civicradar/internal/domain/entity"
)

// LocationRepository persists the last known position of each user.
type LocationRepository interface {
	// UpsertLocation inserts or replaces the user's row. Last write wins.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindTrackedUsers returns every stored location joined with its preference row.
	// Users without a preference row are omitted.
	FindTrackedUsers(ctx context.Context) ([]*entity.TrackedUser, error)
}
