package entity

import (
	"time"

	"github.com/google/uuid"
)

const DispatchTypeProximity = "proximity"

// DispatchLogEntry is the audit row written once per dispatch.
type DispatchLogEntry struct {
	ID                 uuid.UUID `json:"id"`
	Type               string    `json:"type"`
	SourceExperienceID uuid.UUID `json:"sourceExperienceId"`
	RecipientsCount    int       `json:"recipientsCount"` // Successful deliveries.
	RadiusMeters       float64   `json:"radiusMeters"`
	CreatedAt          time.Time `json:"createdAt"`
}
