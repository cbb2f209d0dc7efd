package repository

import (
	"context"

	"civicradar/internal/domain/entity"
)

// DispatchLogRepository appends dispatch audit rows.
type DispatchLogRepository interface {
	CreateDispatchLog(ctx context.Context, entry *entity.DispatchLogEntry) error
}
