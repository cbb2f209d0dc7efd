package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference stores a user's notification opt-ins.
// A user without a row is treated as opted out.
type NotificationPreference struct {
	UserID                        uuid.UUID `json:"userId"`
	NotificationsEnabled          bool      `json:"notificationsEnabled"`
	ProximityNotificationsEnabled bool      `json:"proximityNotificationsEnabled"`
	UpdatedAt                     time.Time `json:"updatedAt"`
}
