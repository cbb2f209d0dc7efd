package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// user_id is the primary key, so each user has at most one row.
type UserLocationModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
	Accuracy  *float64  `gorm:"type:double precision"`
	Timestamp time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}

// TrackedUserRow is the scan target for the locations x preferences join.
type TrackedUserRow struct {
	UserID                        uuid.UUID
	Latitude                      float64
	Longitude                     float64
	Accuracy                      *float64
	Timestamp                     time.Time
	UpdatedAt                     time.Time
	NotificationsEnabled          bool
	ProximityNotificationsEnabled bool
}
