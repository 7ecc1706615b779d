package pullrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPullRepository implements PullRepository using GORM.
type GormPullRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPullRepository creates a new GORM pull repository.
func NewGormPullRepository(db *gorm.DB, tracker aggregateTracker) *GormPullRepository {
	return &GormPullRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pull to the database.
func (r *GormPullRepository) Add(ctx context.Context, aggregate *pull.Pull) error {
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

// Update saves an existing pull to the database. Uses Select("*") so a
// cleared batch or agency reference persists as NULL.
func (r *GormPullRepository) Update(ctx context.Context, aggregate *pull.Pull) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PullDTO{}).
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

// Get retrieves a pull by ID.
func (r *GormPullRepository) Get(ctx context.Context, id kernel.UUID) (*pull.Pull, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PullDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pull", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBatch retrieves the pulls grouped under a batch.
func (r *GormPullRepository) GetByBatch(ctx context.Context, batchID kernel.UUID) ([]*pull.Pull, error) {
	if err := batchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PullDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "batch_id = ?", batchID.Bytes()).Error; err != nil {
		return nil, err
	}

	pulls := make([]*pull.Pull, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pulls = append(pulls, p)
	}

	return pulls, nil
}
