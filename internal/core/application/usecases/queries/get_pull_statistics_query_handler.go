package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPullStatisticsQueryHandler computes per-status package counts for a
// sack directly in the database.
type GetPullStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetPullStatisticsQueryHandler creates a handler for sack statistics
// queries.
func NewGetPullStatisticsQueryHandler(db *gorm.DB) GetPullStatisticsQueryHandler {
	return GetPullStatisticsQueryHandler{db: db}
}

// Handle executes the query. Statuses with no packages are simply absent
// from the counts map.
func (h GetPullStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetPullStatisticsQuery,
) (GetPullStatisticsQueryResponse, error) {
	resp := GetPullStatisticsQueryResponse{
		StatusCounts: make(map[string]int),
	}

	if err := query.Validate(); err != nil {
		return resp, err
	}
	resp.PullID = query.PullID()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM packages
		WHERE pull_id = ?
		GROUP BY status
	`, query.PullID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return resp, err
		}

		resp.StatusCounts[status] = count
		resp.TotalPackages += count
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	return resp, nil
}
