package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel maps the 'reports' table written by the reporting service.
type ReportModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100)"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	CreatedAt   time.Time
}

func (ReportModel) TableName() string {
	return "reports"
}

// GeofenceRegionModel maps the 'geofence_regions' table.
type GeofenceRegionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExperienceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude     float64   `gorm:"type:double precision;not null"`
	Longitude    float64   `gorm:"type:double precision;not null"`
	RadiusMeters float64   `gorm:"type:double precision;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time
}

func (GeofenceRegionModel) TableName() string {
	return "geofence_regions"
}
