package dispatchrepo

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a new GORM dispatch repository.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispatch and its membership rows to the database.
func (r *GormDispatchRepository) Add(ctx context.Context, aggregate *dispatch.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, pulls, packages := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(pulls) > 0 {
		if err := r.db.WithContext(ctx).Create(&pulls).Error; err != nil {
			return err
		}
	}
	if len(packages) > 0 {
		if err := r.db.WithContext(ctx).Create(&packages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispatch to the database. Membership rows are
// replaced wholesale, which keeps them in step with the aggregate's
// idempotent AddPull/AddPackage semantics.
func (r *GormDispatchRepository) Update(ctx context.Context, aggregate *dispatch.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, pulls, packages := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DispatchDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&DispatchPullDTO{}, "dispatch_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&DispatchPackageDTO{}, "dispatch_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(pulls) > 0 {
		if err := r.db.WithContext(ctx).Create(&pulls).Error; err != nil {
			return err
		}
	}
	if len(packages) > 0 {
		if err := r.db.WithContext(ctx).Create(&packages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispatch with its membership rows by ID.
func (r *GormDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch", id.String())
		}
		return nil, err
	}

	pulls, packages, err := r.loadMembers(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, pulls, packages)
}

// GetByDate retrieves the dispatches planned for a calendar date.
func (r *GormDispatchRepository) GetByDate(ctx context.Context, date time.Time) ([]*dispatch.Dispatch, error) {
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var dtos []DispatchDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "date = ?", day).Error; err != nil {
		return nil, err
	}

	dispatches := make([]*dispatch.Dispatch, 0, len(dtos))
	for _, dto := range dtos {
		pulls, packages, err := r.loadMembers(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		d, err := toDomain(dto, pulls, packages)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, d)
	}

	return dispatches, nil
}

func (r *GormDispatchRepository) loadMembers(ctx context.Context, dispatchID any) ([]DispatchPullDTO, []DispatchPackageDTO, error) {
	var pulls []DispatchPullDTO
	if err := r.db.WithContext(ctx).Find(&pulls, "dispatch_id = ?", dispatchID).Error; err != nil {
		return nil, nil, err
	}

	var packages []DispatchPackageDTO
	if err := r.db.WithContext(ctx).Find(&packages, "dispatch_id = ?", dispatchID).Error; err != nil {
		return nil, nil, err
	}

	return pulls, packages, nil
}
