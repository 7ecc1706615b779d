package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDispatchSummaryQueryHandler computes a date's outbound totals: how
// many dispatches, sacks, and packages (sacked plus loose) went out. The
// daily report job logs exactly this summary.
type GetDispatchSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchSummaryQueryHandler creates a handler for dispatch summary
// queries.
func NewGetDispatchSummaryQueryHandler(db *gorm.DB) GetDispatchSummaryQueryHandler {
	return GetDispatchSummaryQueryHandler{db: db}
}

// Handle executes the query. Cancelled dispatches are excluded from the
// totals.
func (h GetDispatchSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchSummaryQuery,
) (GetDispatchSummaryQueryResponse, error) {
	var resp GetDispatchSummaryQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}
	resp.Date = query.Date()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT d.id),
			COUNT(DISTINCT dp.pull_id),
			COUNT(DISTINCT p.id),
			COUNT(DISTINCT dpk.package_id)
		FROM dispatches d
		LEFT JOIN dispatch_pulls dp ON dp.dispatch_id = d.id
		LEFT JOIN packages p ON p.pull_id = dp.pull_id
		LEFT JOIN dispatch_packages dpk ON dpk.dispatch_id = d.id
		WHERE d.date = ?
		  AND d.status <> 'CANCELADO'
	`, query.Date()).Row()

	err := row.Scan(
		&resp.Dispatches,
		&resp.Pulls,
		&resp.SackedPackages,
		&resp.LoosePackages,
	)
	if err != nil {
		return resp, err
	}

	resp.TotalPackages = resp.SackedPackages + resp.LoosePackages
	return resp, nil
}
