package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetPullStatisticsQueryIsNotConstructed = errors.New(
	"GetPullStatisticsQuery must be created via NewGetPullStatisticsQuery constructor",
)

// GetPullStatisticsQuery retrieves per-status package counts for one sack.
type GetPullStatisticsQuery struct { //nolint:recvcheck //using for validation
	pullID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPullStatisticsQuery creates a query for sack statistics.
func NewGetPullStatisticsQuery(pullID kernel.UUID) (GetPullStatisticsQuery, error) {
	q := GetPullStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPullID(pullID); err != nil {
		return GetPullStatisticsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPullStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetPullStatisticsQueryIsNotConstructed)
}

// PullID returns the sack identifier.
func (q GetPullStatisticsQuery) PullID() kernel.UUID {
	return q.pullID
}

func (q *GetPullStatisticsQuery) setPullID(pullID kernel.UUID) error {
	if err := pullID.Validate(); err != nil {
		return err
	}
	q.pullID = pullID
	return nil
}

// GetPullStatisticsQueryResponse summarizes a sack's contents by status.
// StatusCounts keys are the status wire tags ("EN_BODEGA", ...).
type GetPullStatisticsQueryResponse struct {
	PullID        kernel.UUID
	TotalPackages int
	StatusCounts  map[string]int
}
