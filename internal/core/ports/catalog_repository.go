package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/catalog"
	"parcelhub/internal/core/domain/model/kernel"
)

// LocationRepository defines the persistence contract for the location
// catalog. Locations are immutable reference data, so there is no Update.
type LocationRepository interface {
	// Add persists a new location. Storage enforces city uniqueness.
	Add(ctx context.Context, location catalog.Location) error

	// Get retrieves a location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (catalog.Location, error)

	// GetByCity retrieves a location by its city name.
	GetByCity(ctx context.Context, city string) (catalog.Location, error)

	// GetAll retrieves the full location catalog.
	GetAll(ctx context.Context) ([]catalog.Location, error)
}

// TransportAgencyRepository defines the persistence contract for
// transport agencies.
type TransportAgencyRepository interface {
	// Add persists a new agency. Storage enforces name uniqueness.
	Add(ctx context.Context, aggregate *catalog.TransportAgency) error

	// Update persists changes to an existing agency.
	Update(ctx context.Context, aggregate *catalog.TransportAgency) error

	// Get retrieves an agency by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.TransportAgency, error)

	// GetAllActive retrieves the agencies available for new assignments.
	GetAllActive(ctx context.Context) ([]*catalog.TransportAgency, error)
}

// DeliveryAgencyRepository defines the persistence contract for last-mile
// delivery agencies.
type DeliveryAgencyRepository interface {
	// Add persists a new agency.
	Add(ctx context.Context, aggregate *catalog.DeliveryAgency) error

	// Update persists changes to an existing agency.
	Update(ctx context.Context, aggregate *catalog.DeliveryAgency) error

	// Get retrieves an agency by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.DeliveryAgency, error)

	// GetByLocation retrieves the agencies serving a location.
	GetByLocation(ctx context.Context, locationID kernel.UUID) ([]*catalog.DeliveryAgency, error)
}
