package repository

import (
	"context"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReportNotFound is returned when no report has the given ID.
	ErrReportNotFound = errors.New("report not found")
	// ErrRegionNotFound is returned when no geofence region has the given ID.
	ErrRegionNotFound = errors.New("region not found")
)

// ReportRepository reads reports owned by the reporting service.
type ReportRepository interface {
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
}

// RegionRepository reads the geofence catalogue.
type RegionRepository interface {
	// ListRegions returns every region, newest report first.
	ListRegions(ctx context.Context) ([]*entity.GeofenceRegion, error)

	FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceRegion, error)
}
