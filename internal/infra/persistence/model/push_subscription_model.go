package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// Rows are hard-deleted; (user_id, endpoint) is unique.
type PushSubscriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	Endpoint   string    `gorm:"type:text;not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	PublicKey  string    `gorm:"type:varchar(255);not null"`
	AuthSecret string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
