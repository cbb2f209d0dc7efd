package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchLogModel is the GORM-specific struct for the 'dispatch_logs' table.
type DispatchLogModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type               string    `gorm:"type:varchar(50);not null"`
	SourceExperienceID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientsCount    int       `gorm:"not null;default:0"`
	RadiusMeters       float64   `gorm:"type:double precision;not null"`
	CreatedAt          time.Time
}

func (DispatchLogModel) TableName() string {
	return "dispatch_logs"
}
