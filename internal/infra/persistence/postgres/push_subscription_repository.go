package postgres

import (
	"context"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements repository.PushSubscriptionRepository.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db}
}

// UpsertSubscription relies on the (user_id, endpoint) unique index so
// concurrent subscribes for the same device collapse into one row.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error {
	subM := fromPushSubscriptionDomain(sub)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
				DoUpdates: clause.AssignmentColumns([]string{"public_key", "auth_secret", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(subM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert push subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

func (repo *pushSubscriptionRepository) DeleteSubscription(ctx context.Context, userID uuid.UUID, endpoint string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete push subscription")
	}

	return result.RowsAffected > 0, nil
}

func (repo *pushSubscriptionRepository) DeleteSubscriptionByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push subscription by ID")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushSubscriptionNotFound
	}

	return nil
}

func (repo *pushSubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions by user")
	}

	return toPushSubscriptionsDomain(subModels), nil
}

func (repo *pushSubscriptionRepository) FindSubscriptionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []*entity.PushSubscription{}, nil
	}

	var subModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions by users")
	}

	return toPushSubscriptionsDomain(subModels), nil
}

func (repo *pushSubscriptionRepository) FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions")
	}

	return toPushSubscriptionsDomain(subModels), nil
}

// --- Mapper Functions ---

func toPushSubscriptionsDomain(models []*model.PushSubscriptionModel) []*entity.PushSubscription {
	subs := make([]*entity.PushSubscription, 0, len(models))
	for _, subM := range models {
		subs = append(subs, &entity.PushSubscription{
			ID:         subM.ID,
			UserID:     subM.UserID,
			Endpoint:   subM.Endpoint,
			PublicKey:  subM.PublicKey,
			AuthSecret: subM.AuthSecret,
			CreatedAt:  subM.CreatedAt,
			UpdatedAt:  subM.UpdatedAt,
		})
	}

	return subs
}

func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	return &model.PushSubscriptionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Endpoint:   data.Endpoint,
		PublicKey:  data.PublicKey,
		AuthSecret: data.AuthSecret,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
