package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/guard"
)

var ErrGetPackageShipmentQueryIsNotConstructed = errors.New(
	"GetPackageShipmentQuery must be created via NewGetPackageShipmentQuery constructor",
)

// GetPackageShipmentQuery retrieves the resolved shipment view of one
// package: its effective destination, carrier, and guide number together
// with which containment level supplied each value.
type GetPackageShipmentQuery struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageShipmentQuery creates a query for a package's shipment
// view.
func NewGetPackageShipmentQuery(packageID kernel.UUID) (GetPackageShipmentQuery, error) {
	q := GetPackageShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPackageID(packageID); err != nil {
		return GetPackageShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageShipmentQueryIsNotConstructed)
}

// PackageID returns the package identifier.
func (q GetPackageShipmentQuery) PackageID() kernel.UUID {
	return q.packageID
}

func (q *GetPackageShipmentQuery) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	q.packageID = packageID
	return nil
}

// GetPackageShipmentQueryResponse is the resolved shipment view.
// ShipmentType carries the wire tag ("lote", "saca", "individual",
// "sin_asignar"); DataSource names the level each attribute came from.
// NoteFlags lists the handling instructions detected in the package's
// notes, nil when none.
type GetPackageShipmentQueryResponse struct {
	PackageID         kernel.UUID
	GuideNumber       string
	EffectiveDestiny  string
	EffectiveAgencyID *kernel.UUID
	EffectiveGuide    string
	DataSource        services.DataSource
	ShipmentType      string
	ShipmentTypeName  string
	NoteFlags         []string
}
