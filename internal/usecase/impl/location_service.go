package impl

import (
	"context"
	"strings"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/repository"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"
	"civicradar/internal/geo"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type locationService struct {
	locationRepo  repository.LocationRepository
	regionRepo    repository.RegionRepository
	qrcodeService service.QRCodeService
	appURL        string
	now           func() time.Time
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Config        *config.Config
	LocationRepo  repository.LocationRepository
	RegionRepo    repository.RegionRepository
	QRCodeService service.QRCodeService
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	svc := &locationService{
		locationRepo:  params.LocationRepo,
		regionRepo:    params.RegionRepo,
		qrcodeService: params.QRCodeService,
		now:           time.Now,
	}
	if params.Config.Composer != nil {
		svc.appURL = strings.TrimRight(params.Config.Composer.AppURL, "/")
	}

	return svc
}

// ReportLocation overwrites the user's last known position
func (s *locationService) ReportLocation(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (*entity.UserLocation, error) {
	if input == nil || input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude are required")
	}
	if !geo.ValidCoordinate(*input.Latitude, *input.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude must be in [-90, 90] and longitude in [-180, 180]")
	}
	if input.Accuracy != nil && *input.Accuracy < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	}

	now := s.now()
	fixedAt := input.Timestamp
	if fixedAt.IsZero() {
		fixedAt = now
	}

	location := &entity.UserLocation{
		UserID:    userID,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Accuracy:  input.Accuracy,
		Timestamp: fixedAt,
		UpdatedAt: now,
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to store location")
	}

	return location, nil
}

func (s *locationService) ListRegions(ctx context.Context) ([]*entity.GeofenceRegion, error) {
	regions, err := s.regionRepo.ListRegions(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to list geofence regions")
	}

	return regions, nil
}

// GenerateRegionQR encodes the link to the region's report
func (s *locationService) GenerateRegionQR(ctx context.Context, regionID uuid.UUID) ([]byte, error) {
	region, err := s.regionRepo.FindRegionByID(ctx, regionID)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, domainerrors.ErrRegionNotFound.WithDetails(regionID.String())
		}

		return nil, domainerrors.NewUpstreamQueryError(err, "failed to load geofence region")
	}

	png, err := s.qrcodeService.GeneratePNG(s.appURL + "/experiences/" + region.ExperienceID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate region QR code")
	}

	return png, nil
}
