package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailablePackagesQueryHandler retrieves unassigned packages from the
// database. Feeds the sack-building screens.
type GetAvailablePackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePackagesQueryHandler creates a handler for unassigned
// package queries.
func NewGetAvailablePackagesQueryHandler(db *gorm.DB) GetAvailablePackagesQueryHandler {
	return GetAvailablePackagesQueryHandler{db: db}
}

// Handle executes the query. Returns packages with no sack assignment,
// sorted by guide number for stable listings.
func (h GetAvailablePackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePackagesQuery,
) ([]GetAvailablePackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetAvailablePackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			guide_number,
			name,
			city,
			province,
			status
		FROM packages
		WHERE pull_id IS NULL
		ORDER BY guide_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailablePackagesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.GuideNumber,
			&resp.Name,
			&resp.City,
			&resp.Province,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		packageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = packageID
		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
