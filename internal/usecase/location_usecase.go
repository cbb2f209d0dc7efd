package usecase

import (
	"context"
	"time"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput is one position sample from a tracking client.
// Coordinates are pointers so a missing field is told apart from 0.
type ReportLocationInput struct {
	Latitude  *float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy  *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUsecase ingests client positions and serves the geofence catalogue.
type LocationUsecase interface {
	// ReportLocation stores the latest position of userID. Last write wins.
	ReportLocation(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (*entity.UserLocation, error)
	ListRegions(ctx context.Context) ([]*entity.GeofenceRegion, error)
	// GenerateRegionQR returns a PNG QR code linking to the region's report.
	GenerateRegionQR(ctx context.Context, regionID uuid.UUID) ([]byte, error)
}
