package postgres

import (
	"context"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type dispatchLogRepository struct {
	db *gorm.DB
}

func NewDispatchLogRepository(db *gorm.DB) repository.DispatchLogRepository {
	return &dispatchLogRepository{db: db}
}

func (repo *dispatchLogRepository) CreateDispatchLog(ctx context.Context, entry *entity.DispatchLogEntry) error {
	logM := &model.DispatchLogModel{
		ID:                 entry.ID,
		Type:               entry.Type,
		SourceExperienceID: entry.SourceExperienceID,
		RecipientsCount:    entry.RecipientsCount,
		RadiusMeters:       entry.RadiusMeters,
		CreatedAt:          entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create dispatch log")
	}

	entry.ID = logM.ID
	entry.CreatedAt = logM.CreatedAt

	return nil
}
