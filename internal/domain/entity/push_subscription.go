package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one device's push endpoint. Unique per (UserID, Endpoint).
type PushSubscription struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Endpoint   string    `json:"endpoint"`
	PublicKey  string    `json:"publicKey"`  // Client p256dh key.
	AuthSecret string    `json:"authSecret"` // Client auth secret.
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
