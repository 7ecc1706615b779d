package queries

import (
	"errors"
	"time"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetDispatchSummaryQueryIsNotConstructed = errors.New(
	"GetDispatchSummaryQuery must be created via NewGetDispatchSummaryQuery constructor",
)

// GetDispatchSummaryQuery retrieves shipping totals for one dispatch date.
type GetDispatchSummaryQuery struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDispatchSummaryQuery creates a query for a date's dispatch totals.
func NewGetDispatchSummaryQuery(date time.Time) (GetDispatchSummaryQuery, error) {
	q := GetDispatchSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDate(date); err != nil {
		return GetDispatchSummaryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchSummaryQueryIsNotConstructed)
}

// Date returns the dispatch date being summarized.
func (q GetDispatchSummaryQuery) Date() time.Time {
	return q.date
}

func (q *GetDispatchSummaryQuery) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	q.date = date.UTC().Truncate(24 * time.Hour)
	return nil
}

// GetDispatchSummaryQueryResponse aggregates a date's outbound volume.
// SackedPackages counts packages inside dispatched sacks; LoosePackages
// counts packages dispatched individually.
type GetDispatchSummaryQueryResponse struct {
	Date           time.Time
	Dispatches     int
	Pulls          int
	SackedPackages int
	LoosePackages  int
	TotalPackages  int
}
