package postgres

import (
	"context"
	"time"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (repo *preferenceRepository) FindPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preference")
	}

	return &entity.NotificationPreference{
		UserID:                        prefM.UserID,
		NotificationsEnabled:          prefM.NotificationsEnabled,
		ProximityNotificationsEnabled: prefM.ProximityNotificationsEnabled,
		UpdatedAt:                     prefM.UpdatedAt,
	}, nil
}

func (repo *preferenceRepository) UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := &model.NotificationPreferenceModel{
		UserID:                        pref.UserID,
		NotificationsEnabled:          pref.NotificationsEnabled,
		ProximityNotificationsEnabled: pref.ProximityNotificationsEnabled,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notifications_enabled", "proximity_notifications_enabled", "updated_at"}),
		}).
		Create(prefM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert notification preference")
	}

	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

func (repo *preferenceRepository) DisableProximity(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationPreferenceModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"proximity_notifications_enabled": false,
			"updated_at":                      time.Now(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to disable proximity notifications")
	}

	return nil
}
