package usecase

import (
	"context"

	"civicradar/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionKeys carries the client's encryption material.
type SubscriptionKeys struct {
	PublicKey  string `json:"publicKey" validate:"required"`
	AuthSecret string `json:"authSecret" validate:"required"`
}

// SubscribeInput is a browser push subscription.
type SubscribeInput struct {
	Endpoint string           `json:"endpoint" validate:"required"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

// UpdatePreferencesInput changes the caller's opt-ins. Nil fields are left untouched.
type UpdatePreferencesInput struct {
	NotificationsEnabled          *bool `json:"notificationsEnabled"`
	ProximityNotificationsEnabled *bool `json:"proximityNotificationsEnabled"`
}

// SubscriptionUsecase is the push subscription registry plus the preferences
// that gate proximity delivery.
type SubscriptionUsecase interface {
	// Subscribe stores the endpoint for userID, refreshing keys if it already exists.
	Subscribe(ctx context.Context, userID uuid.UUID, input *SubscribeInput) (*entity.PushSubscription, error)
	// Unsubscribe removes the endpoint. Unknown endpoints are not an error.
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)
	ListAll(ctx context.Context) ([]*entity.PushSubscription, error)
	// Remove deletes a subscription by id.
	Remove(ctx context.Context, subscriptionID uuid.UUID) error

	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.NotificationPreference, error)
}
