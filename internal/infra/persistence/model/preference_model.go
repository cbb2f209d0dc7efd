package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	UserID                        uuid.UUID `gorm:"type:uuid;primary_key"`
	NotificationsEnabled          bool      `gorm:"not null;default:false"`
	ProximityNotificationsEnabled bool      `gorm:"not null;default:false"`
	UpdatedAt                     time.Time
}

func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}
