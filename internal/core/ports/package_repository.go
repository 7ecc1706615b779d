package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package
// aggregates. It also serves as the services.PackageSource the hierarchy
// guard traverses through.
type PackageRepository interface {
	// Add persists a new package aggregate to storage.
	// Storage enforces guide-number uniqueness; callers pre-check with
	// ExistsByGuideNumber to return a domain error instead of a raw
	// constraint violation.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists changes to an existing package aggregate.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetByIDs retrieves the packages with the given identifiers,
	// preserving the order of ids. Fails if any id is missing.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Package, error)

	// GetByGuideNumber retrieves a package by its guide number.
	GetByGuideNumber(ctx context.Context, guideNumber string) (*parcel.Package, error)

	// ExistsByGuideNumber reports whether any package uses the guide number.
	ExistsByGuideNumber(ctx context.Context, guideNumber string) (bool, error)

	// GetByParent retrieves the direct hierarchy children of a package.
	GetByParent(ctx context.Context, parentID kernel.UUID) ([]*parcel.Package, error)

	// GetByPull retrieves all packages contained in a pull.
	GetByPull(ctx context.Context, pullID kernel.UUID) ([]*parcel.Package, error)

	// GetUnassigned retrieves loose packages (no pull), available for
	// sack building.
	GetUnassigned(ctx context.Context) ([]*parcel.Package, error)
}
