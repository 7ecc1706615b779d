package pullrepo

import (
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"

	"github.com/google/uuid"
)

// PullDTO represents the database model for a pull (sack).
type PullDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CommonDestiny     string     `gorm:"not null"`
	Size              string     `gorm:"not null"`
	BatchID           *uuid.UUID `gorm:"type:uuid;index"`
	TransportAgencyID *uuid.UUID `gorm:"type:uuid;index"`
	GuideNumber       string     `gorm:"not null;default:''"`
	BarcodePath       string     `gorm:"not null;default:''"`
}

// TableName overrides the table name used by GORM.
func (PullDTO) TableName() string {
	return "pulls"
}

func fromDomain(aggregate *pull.Pull) PullDTO {
	return PullDTO{
		ID:                aggregate.ID().Bytes(),
		CommonDestiny:     aggregate.CommonDestiny(),
		Size:              aggregate.Size().String(),
		BatchID:           refToRaw(aggregate.BatchID()),
		TransportAgencyID: refToRaw(aggregate.TransportAgencyID()),
		GuideNumber:       aggregate.GuideNumber(),
		BarcodePath:       aggregate.BarcodePath(),
	}
}

func toDomain(dto PullDTO) (*pull.Pull, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	size, err := pull.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}

	batchID, err := rawToRef(dto.BatchID)
	if err != nil {
		return nil, err
	}

	transportAgencyID, err := rawToRef(dto.TransportAgencyID)
	if err != nil {
		return nil, err
	}

	return pull.RestorePull(
		id,
		dto.CommonDestiny,
		size,
		batchID,
		transportAgencyID,
		dto.GuideNumber,
		dto.BarcodePath,
	)
}

func refToRaw(ref *kernel.UUID) *uuid.UUID {
	if ref == nil {
		return nil
	}
	raw := ref.Bytes()
	return &raw
}

func rawToRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ref, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
