// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation is the last reported position of a user. One row per user.
type UserLocation struct {
	UserID    uuid.UUID `json:"userId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"` // Meters, as reported by the device.
	Timestamp time.Time `json:"timestamp"`          // When the device took the fix.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrackedUser joins a user's last location with their notification preferences.
type TrackedUser struct {
	Location   UserLocation
	Preference NotificationPreference
}

// WantsProximityAlerts reports whether both notification flags are on.
func (u *TrackedUser) WantsProximityAlerts() bool {
	return u.Preference.NotificationsEnabled && u.Preference.ProximityNotificationsEnabled
}
