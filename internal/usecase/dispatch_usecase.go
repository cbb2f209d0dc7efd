// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchInput identifies the report to announce and how far to reach.
type DispatchInput struct {
	ExperienceID string   `json:"experienceId" validate:"required,uuid"`
	RadiusMeters *float64 `json:"radiusMeters,omitempty" validate:"omitempty,gt=0"`
}

// DispatchResult aggregates one dispatch call. Per-delivery failures are
// reported in Errors and never fail the call.
type DispatchResult struct {
	Success            bool     `json:"success"`
	Notified           int      `json:"notified"`
	TotalNearbyUsers   int      `json:"totalNearbyUsers"`
	TotalSubscriptions int      `json:"totalSubscriptions"`
	Errors             []string `json:"errors,omitempty"`
}

// DispatchUsecase delivers proximity notifications for newly created reports.
type DispatchUsecase interface {
	// DispatchProximity notifies opted-in users within the radius of the report.
	DispatchProximity(ctx context.Context, input *DispatchInput) (*DispatchResult, error)

	// EnqueueProximityDispatch checks the report exists and publishes a
	// report-created event for the dispatch worker.
	EnqueueProximityDispatch(ctx context.Context, input *DispatchInput) error

	// SendTestNotification delivers a diagnostic payload to every subscription of userID.
	SendTestNotification(ctx context.Context, userID uuid.UUID, message string) (*DispatchResult, error)
}
