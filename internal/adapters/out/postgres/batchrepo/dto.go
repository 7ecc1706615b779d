package batchrepo

import (
	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database model for a batch (lot).
type BatchDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Destiny           string     `gorm:"not null"`
	TransportAgencyID *uuid.UUID `gorm:"type:uuid;index"`
	GuideNumber       string     `gorm:"not null;default:''"`
}

// TableName overrides the table name used by GORM.
func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:                aggregate.ID().Bytes(),
		Destiny:           aggregate.Destiny(),
		TransportAgencyID: refToRaw(aggregate.TransportAgencyID()),
		GuideNumber:       aggregate.GuideNumber(),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transportAgencyID, err := rawToRef(dto.TransportAgencyID)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(id, dto.Destiny, transportAgencyID, dto.GuideNumber)
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
