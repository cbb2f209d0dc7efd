package postgres

import (
	"context"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reportM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return &entity.Report{
		ID:          reportM.ID,
		Title:       reportM.Title,
		Description: reportM.Description,
		Category:    reportM.Category,
		Latitude:    reportM.Latitude,
		Longitude:   reportM.Longitude,
		CreatedAt:   reportM.CreatedAt,
	}, nil
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

func (repo *regionRepository) ListRegions(ctx context.Context) ([]*entity.GeofenceRegion, error) {
	var regionModels []*model.GeofenceRegionModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list geofence regions")
	}

	regions := make([]*entity.GeofenceRegion, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, nil
}

func (repo *regionRepository) FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceRegion, error) {
	var regionM model.GeofenceRegionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&regionM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence region by ID")
	}

	return toRegionDomain(&regionM), nil
}

func toRegionDomain(data *model.GeofenceRegionModel) *entity.GeofenceRegion {
	return &entity.GeofenceRegion{
		ID:           data.ID,
		ExperienceID: data.ExperienceID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		Title:        data.Title,
		Description:  data.Description,
	}
}
