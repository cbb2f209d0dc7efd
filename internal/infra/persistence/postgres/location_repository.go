package postgres

import (
	"context"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements repository.LocationRepository.
type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// UpsertLocation replaces the user's single location row.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "accuracy", "timestamp", "updated_at"}),
		}).
		Create(locationM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert user location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindTrackedUsers loads every location that has a preference row.
func (repo *locationRepository) FindTrackedUsers(ctx context.Context) ([]*entity.TrackedUser, error) {
	var rows []model.TrackedUserRow

	err := repo.db.WithContext(ctx).
		Table("user_locations AS l").
		Select("l.user_id, l.latitude, l.longitude, l.accuracy, l.timestamp, l.updated_at, " +
			"p.notifications_enabled, p.proximity_notifications_enabled").
		Joins("JOIN notification_preferences AS p ON p.user_id = l.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tracked users")
	}

	users := make([]*entity.TrackedUser, 0, len(rows))
	for idx := range rows {
		row := &rows[idx]
		users = append(users, &entity.TrackedUser{
			Location: entity.UserLocation{
				UserID:    row.UserID,
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
				Accuracy:  row.Accuracy,
				Timestamp: row.Timestamp,
				UpdatedAt: row.UpdatedAt,
			},
			Preference: entity.NotificationPreference{
				UserID:                        row.UserID,
				NotificationsEnabled:          row.NotificationsEnabled,
				ProximityNotificationsEnabled: row.ProximityNotificationsEnabled,
			},
		})
	}

	return users, nil
}

func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	return &model.UserLocationModel{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Timestamp: data.Timestamp,
		UpdatedAt: data.UpdatedAt,
	}
}
