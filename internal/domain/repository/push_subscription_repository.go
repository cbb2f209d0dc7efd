package repository

import (
	"context"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPushSubscriptionNotFound is returned when a subscription does not exist.
var ErrPushSubscriptionNotFound = errors.New("push subscription not found")

// PushSubscriptionRepository stores per-device push endpoints.
type PushSubscriptionRepository interface {
	// UpsertSubscription inserts the row or refreshes its keys when (user, endpoint) already exists.
	// The entity is updated with the stored ID and timestamps.
	UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error

	// DeleteSubscription removes the user's row for endpoint. It reports whether a row was removed.
	DeleteSubscription(ctx context.Context, userID uuid.UUID, endpoint string) (bool, error)

	// DeleteSubscriptionByID removes one row. ErrPushSubscriptionNotFound if absent.
	DeleteSubscriptionByID(ctx context.Context, id uuid.UUID) error

	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindSubscriptionsByUsers resolves subscriptions for many users in one query.
	FindSubscriptionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error)

	FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error)
}
