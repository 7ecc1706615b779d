// Package packagerepo provides data transfer objects and mapping functions
// for package persistence. Implements the repository pattern for the
// package aggregate, converting between domain entities and database rows.
package packagerepo

import (
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package
// aggregates. The guide number carries a unique index because it is the
// operational identity of a package; status is stored as its wire tag so
// reporting queries can group on readable values.
type PackageDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GuideNumber       string     `gorm:"uniqueIndex;not null"`
	NroMaster         string     `gorm:"not null;default:''"`
	AgencyGuideNumber string     `gorm:"not null;default:''"`
	Name              string     `gorm:"not null"`
	Address           string     `gorm:"not null"`
	City              string     `gorm:"not null"`
	Province          string     `gorm:"not null"`
	Phone             string     `gorm:"not null"`
	Status            string     `gorm:"index;not null"`
	Notes             string     `gorm:"not null;default:''"`
	Hashtags          string     `gorm:"not null;default:''"`
	PullID            *uuid.UUID `gorm:"type:uuid;index"`
	TransportAgencyID *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAgencyID  *uuid.UUID `gorm:"type:uuid;index"`
	ParentID          *uuid.UUID `gorm:"type:uuid;index"`
	GuideHistory      string     `gorm:"not null;default:''"`
	StatusHistory     string     `gorm:"not null;default:''"`
	NotesHistory      string     `gorm:"not null;default:''"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package aggregate to its database representation.
func fromDomain(pkg *parcel.Package) PackageDTO {
	return PackageDTO{
		ID:                pkg.ID().Bytes(),
		GuideNumber:       pkg.GuideNumber(),
		NroMaster:         pkg.NroMaster(),
		AgencyGuideNumber: pkg.AgencyGuideNumber(),
		Name:              pkg.Name(),
		Address:           pkg.Address(),
		City:              pkg.City(),
		Province:          pkg.Province(),
		Phone:             pkg.Phone(),
		Status:            pkg.Status().String(),
		Notes:             pkg.Notes(),
		Hashtags:          pkg.Hashtags(),
		PullID:            refToRaw(pkg.PullID()),
		TransportAgencyID: refToRaw(pkg.TransportAgencyID()),
		DeliveryAgencyID:  refToRaw(pkg.DeliveryAgencyID()),
		ParentID:          refToRaw(pkg.ParentID()),
		GuideHistory:      pkg.GuideHistory(),
		StatusHistory:     pkg.StatusHistory(),
		NotesHistory:      pkg.NotesHistory(),
	}
}

// toDomain converts a database DTO back to a package aggregate.
func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pullID, err := rawToRef(dto.PullID)
	if err != nil {
		return nil, err
	}
	transportAgencyID, err := rawToRef(dto.TransportAgencyID)
	if err != nil {
		return nil, err
	}
	deliveryAgencyID, err := rawToRef(dto.DeliveryAgencyID)
	if err != nil {
		return nil, err
	}
	parentID, err := rawToRef(dto.ParentID)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(
		id,
		dto.GuideNumber,
		dto.NroMaster,
		dto.AgencyGuideNumber,
		dto.Name,
		dto.Address,
		dto.City,
		dto.Province,
		dto.Phone,
		status,
		dto.Notes,
		dto.Hashtags,
		pullID,
		transportAgencyID,
		deliveryAgencyID,
		parentID,
		dto.GuideHistory,
		dto.StatusHistory,
		dto.NotesHistory,
	)
}

func refToRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func rawToRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
