package catalogrepo

import (
	"parcelhub/internal/core/domain/model/catalog"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LocationDTO represents the database model for a destination city.
type LocationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	City     string    `gorm:"uniqueIndex;not null"`
	Province string    `gorm:"not null"`
}

// TableName overrides the table name used by GORM.
func (LocationDTO) TableName() string {
	return "locations"
}

// TransportAgencyDTO represents the database model for an inter-city
// carrier.
type TransportAgencyDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"uniqueIndex;not null"`
	Phone         string    `gorm:"not null"`
	Email         string    `gorm:"not null;default:''"`
	Address       string    `gorm:"not null;default:''"`
	ContactPerson string    `gorm:"not null;default:''"`
	Notes         string    `gorm:"not null;default:''"`
	Active        bool      `gorm:"not null;default:true"`
}

// TableName overrides the table name used by GORM.
func (TransportAgencyDTO) TableName() string {
	return "transport_agencies"
}

// DeliveryAgencyDTO represents the database model for a last-mile handler.
type DeliveryAgencyDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	LocationID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Address       string    `gorm:"not null;default:''"`
	Phone         string    `gorm:"not null;default:''"`
	ContactPerson string    `gorm:"not null;default:''"`
	Active        bool      `gorm:"not null;default:true"`
}

// TableName overrides the table name used by GORM.
func (DeliveryAgencyDTO) TableName() string {
	return "delivery_agencies"
}

func locationFromDomain(location catalog.Location) LocationDTO {
	return LocationDTO{
		ID:       location.ID().Bytes(),
		City:     location.City(),
		Province: location.Province(),
	}
}

func locationToDomain(dto LocationDTO) (catalog.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Location{}, err
	}

	return catalog.NewLocation(id, dto.City, dto.Province)
}

func transportAgencyFromDomain(aggregate *catalog.TransportAgency) TransportAgencyDTO {
	return TransportAgencyDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Email:         aggregate.Email(),
		Address:       aggregate.Address(),
		ContactPerson: aggregate.ContactPerson(),
		Notes:         aggregate.Notes(),
		Active:        aggregate.IsActive(),
	}
}

func transportAgencyToDomain(dto TransportAgencyDTO) (*catalog.TransportAgency, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreTransportAgency(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		dto.Address,
		dto.ContactPerson,
		dto.Notes,
		dto.Active,
	)
}

func deliveryAgencyFromDomain(aggregate *catalog.DeliveryAgency) DeliveryAgencyDTO {
	return DeliveryAgencyDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		LocationID:    aggregate.LocationID().Bytes(),
		Address:       aggregate.Address(),
		Phone:         aggregate.Phone(),
		ContactPerson: aggregate.ContactPerson(),
		Active:        aggregate.IsActive(),
	}
}

func deliveryAgencyToDomain(dto DeliveryAgencyDTO) (*catalog.DeliveryAgency, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreDeliveryAgency(
		id,
		dto.Name,
		locationID,
		dto.Address,
		dto.Phone,
		dto.ContactPerson,
		dto.Active,
	)
}
