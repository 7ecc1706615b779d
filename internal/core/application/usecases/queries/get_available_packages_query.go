// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetAvailablePackagesQueryIsNotConstructed = errors.New(
	"GetAvailablePackagesQuery must be created via NewGetAvailablePackagesQuery constructor",
)

// GetAvailablePackagesQuery retrieves the packages not yet placed in any
// sack. These are the candidates for sack building and auto-distribution.
type GetAvailablePackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePackagesQuery creates a query for unassigned packages.
func NewGetAvailablePackagesQuery() GetAvailablePackagesQuery {
	return GetAvailablePackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePackagesQueryIsNotConstructed)
}

// GetAvailablePackagesQueryResponse is one unassigned package row.
type GetAvailablePackagesQueryResponse struct {
	ID          kernel.UUID
	GuideNumber string
	Name        string
	City        string
	Province    string
	Status      string
}
