package catalogrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/catalog"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormLocationRepository implements LocationRepository using GORM.
// Locations are immutable value objects, so nothing is tracked.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add saves a new location to the database.
func (r *GormLocationRepository) Add(ctx context.Context, location catalog.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(location)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a location by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Location, error) {
	if err := id.Validate(); err != nil {
		return catalog.Location{}, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Location{}, errs.NewObjectNotFoundError("location", id.String())
		}
		return catalog.Location{}, err
	}

	return locationToDomain(dto)
}

// GetByCity retrieves a location by its city name.
func (r *GormLocationRepository) GetByCity(ctx context.Context, city string) (catalog.Location, error) {
	if city == "" {
		return catalog.Location{}, errs.NewValueIsRequiredError("city")
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "city = ?", city).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Location{}, errs.NewObjectNotFoundError("location", city)
		}
		return catalog.Location{}, err
	}

	return locationToDomain(dto)
}

// GetAll retrieves the full location catalog ordered by city.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]catalog.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("city").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]catalog.Location, 0, len(dtos))
	for _, dto := range dtos {
		location, err := locationToDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

// GormTransportAgencyRepository implements TransportAgencyRepository
// using GORM.
type GormTransportAgencyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTransportAgencyRepository creates a new GORM transport agency
// repository.
func NewGormTransportAgencyRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportAgencyRepository {
	return &GormTransportAgencyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transport agency to the database.
func (r *GormTransportAgencyRepository) Add(ctx context.Context, aggregate *catalog.TransportAgency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := transportAgencyFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transport agency to the database.
func (r *GormTransportAgencyRepository) Update(ctx context.Context, aggregate *catalog.TransportAgency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := transportAgencyFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransportAgencyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transport agency by ID.
func (r *GormTransportAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.TransportAgency, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportAgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transportAgency", id.String())
		}
		return nil, err
	}

	return transportAgencyToDomain(dto)
}

// GetAllActive retrieves the agencies available for new assignments.
func (r *GormTransportAgencyRepository) GetAllActive(ctx context.Context) ([]*catalog.TransportAgency, error) {
	var dtos []TransportAgencyDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	agencies := make([]*catalog.TransportAgency, 0, len(dtos))
	for _, dto := range dtos {
		agency, err := transportAgencyToDomain(dto)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, agency)
	}

	return agencies, nil
}

// GormDeliveryAgencyRepository implements DeliveryAgencyRepository
// using GORM.
type GormDeliveryAgencyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryAgencyRepository creates a new GORM delivery agency
// repository.
func NewGormDeliveryAgencyRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryAgencyRepository {
	return &GormDeliveryAgencyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery agency to the database.
func (r *GormDeliveryAgencyRepository) Add(ctx context.Context, aggregate *catalog.DeliveryAgency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryAgencyFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery agency to the database.
func (r *GormDeliveryAgencyRepository) Update(ctx context.Context, aggregate *catalog.DeliveryAgency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryAgencyFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryAgencyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery agency by ID.
func (r *GormDeliveryAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.DeliveryAgency, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAgency", id.String())
		}
		return nil, err
	}

	return deliveryAgencyToDomain(dto)
}

// GetByLocation retrieves the delivery agencies serving a location.
func (r *GormDeliveryAgencyRepository) GetByLocation(ctx context.Context, locationID kernel.UUID) ([]*catalog.DeliveryAgency, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryAgencyDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "location_id = ?", locationID.Bytes()).Error; err != nil {
		return nil, err
	}

	agencies := make([]*catalog.DeliveryAgency, 0, len(dtos))
	for _, dto := range dtos {
		agency, err := deliveryAgencyToDomain(dto)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, agency)
	}

	return agencies, nil
}
