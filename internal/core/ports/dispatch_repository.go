package ports

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch
// aggregates.
type DispatchRepository interface {
	// Add persists a new dispatch aggregate to storage.
	Add(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Update persists changes to an existing dispatch aggregate.
	Update(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Get retrieves a dispatch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error)

	// GetByDate retrieves the dispatches planned for a calendar date.
	GetByDate(ctx context.Context, date time.Time) ([]*dispatch.Dispatch, error)
}
