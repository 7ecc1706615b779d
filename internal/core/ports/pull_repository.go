package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
)

// PullRepository defines the persistence contract for pull (sack)
// aggregates.
type PullRepository interface {
	// Add persists a new pull aggregate to storage.
	Add(ctx context.Context, aggregate *pull.Pull) error

	// Update persists changes to an existing pull aggregate.
	Update(ctx context.Context, aggregate *pull.Pull) error

	// Get retrieves a pull by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pull.Pull, error)

	// GetByBatch retrieves all pulls belonging to a batch.
	GetByBatch(ctx context.Context, batchID kernel.UUID) ([]*pull.Pull, error)
}
