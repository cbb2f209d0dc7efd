package service

import (
	"context"

	"civicradar/internal/domain/entity"
)

// EventPublisher hands report events to the asynchronous dispatch worker.
type EventPublisher interface {
	PublishReportCreated(ctx context.Context, event *entity.ReportCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
