package dispatchrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchDTO represents the database model for a dispatch day.
type DispatchDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date   time.Time `gorm:"type:date;index;not null"`
	Status string    `gorm:"index;not null"`
	Notes  string    `gorm:"not null;default:''"`
}

// TableName overrides the table name used by GORM.
func (DispatchDTO) TableName() string {
	return "dispatches"
}

// DispatchPullDTO links a dispatch to a pull leaving on that day.
type DispatchPullDTO struct {
	DispatchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PullID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name used by GORM.
func (DispatchPullDTO) TableName() string {
	return "dispatch_pulls"
}

// DispatchPackageDTO links a dispatch to a loose package leaving on that
// day.
type DispatchPackageDTO struct {
	DispatchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name used by GORM.
func (DispatchPackageDTO) TableName() string {
	return "dispatch_packages"
}

func fromDomain(aggregate *dispatch.Dispatch) (DispatchDTO, []DispatchPullDTO, []DispatchPackageDTO) {
	dto := DispatchDTO{
		ID:     aggregate.ID().Bytes(),
		Date:   aggregate.Date(),
		Status: aggregate.Status().String(),
		Notes:  aggregate.Notes(),
	}

	pullIDs := aggregate.PullIDs()
	pulls := make([]DispatchPullDTO, 0, len(pullIDs))
	for _, id := range pullIDs {
		pulls = append(pulls, DispatchPullDTO{DispatchID: dto.ID, PullID: id.Bytes()})
	}

	packageIDs := aggregate.PackageIDs()
	packages := make([]DispatchPackageDTO, 0, len(packageIDs))
	for _, id := range packageIDs {
		packages = append(packages, DispatchPackageDTO{DispatchID: dto.ID, PackageID: id.Bytes()})
	}

	return dto, pulls, packages
}

func toDomain(dto DispatchDTO, pulls []DispatchPullDTO, packages []DispatchPackageDTO) (*dispatch.Dispatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := dispatch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pullIDs := make([]kernel.UUID, 0, len(pulls))
	for _, link := range pulls {
		pullID, err := kernel.UUIDFromBytes(link.PullID[:])
		if err != nil {
			return nil, err
		}
		pullIDs = append(pullIDs, pullID)
	}

	packageIDs := make([]kernel.UUID, 0, len(packages))
	for _, link := range packages {
		packageID, err := kernel.UUIDFromBytes(link.PackageID[:])
		if err != nil {
			return nil, err
		}
		packageIDs = append(packageIDs, packageID)
	}

	return dispatch.RestoreDispatch(id, dto.Date, status, dto.Notes, pullIDs, packageIDs)
}
