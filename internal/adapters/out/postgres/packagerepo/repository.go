package packagerepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database. Uses Select("*") so
// cleared references (removed parent, removed pull) persist as NULL.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
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

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves packages preserving the order of the requested IDs.
// Every requested package must exist.
func (r *GormPackageRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Package, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*parcel.Package, len(dtos))
	for _, dto := range dtos {
		pkg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		byID[pkg.ID()] = pkg
	}

	packages := make([]*parcel.Package, 0, len(ids))
	for _, id := range ids {
		pkg, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// GetByGuideNumber retrieves a package by its guide number.
func (r *GormPackageRepository) GetByGuideNumber(ctx context.Context, guideNumber string) (*parcel.Package, error) {
	if guideNumber == "" {
		return nil, errs.NewValueIsRequiredError("guideNumber")
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "guide_number = ?", guideNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", guideNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByGuideNumber reports whether a guide number is already in use.
func (r *GormPackageRepository) ExistsByGuideNumber(ctx context.Context, guideNumber string) (bool, error) {
	if guideNumber == "" {
		return false, errs.NewValueIsRequiredError("guideNumber")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("guide_number = ?", guideNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByParent retrieves the direct children of a package.
func (r *GormPackageRepository) GetByParent(ctx context.Context, parentID kernel.UUID) ([]*parcel.Package, error) {
	if err := parentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "parent_id = ?", parentID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByPull retrieves the packages inside a sack.
func (r *GormPackageRepository) GetByPull(ctx context.Context, pullID kernel.UUID) ([]*parcel.Package, error) {
	if err := pullID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "pull_id = ?", pullID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetUnassigned retrieves the packages not placed in any sack.
func (r *GormPackageRepository) GetUnassigned(ctx context.Context) ([]*parcel.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "pull_id IS NULL").Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PackageDTO) ([]*parcel.Package, error) {
	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}
