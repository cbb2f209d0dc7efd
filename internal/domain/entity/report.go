package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a civic issue submitted by a citizen. Its ID is the experienceId
// used in notification payloads and links.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GeofenceRegion is a circular area around a report.
type GeofenceRegion struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID uuid.UUID `json:"experienceId"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radiusMeters"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
}
