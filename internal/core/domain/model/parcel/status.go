package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the pipeline state of a package. Unlike a strict state
// machine, the back office allows any valid status to be set at any time
// (carriers report out of order), so transitions are not restricted; every
// change is recorded in the package's status history instead.
//
// Typical flow:
//
//	NotReceived ──> Warehoused ──> InTransit ──> Delivered
//	                                   │
//	                                   ├──> Returned
//	                                   └──> Retained
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNotReceived means the package is announced but has not yet
	// arrived at the warehouse. This is the initial status.
	StatusNotReceived

	// StatusWarehoused means the package is physically in the warehouse.
	StatusWarehoused

	// StatusInTransit means the package left the warehouse with a carrier.
	StatusInTransit

	// StatusDelivered means the package reached its recipient.
	StatusDelivered

	// StatusReturned means the package came back undelivered.
	StatusReturned

	// StatusRetained means the package is held (customs, payment, claims).
	StatusRetained
)

// getStatusStrings returns a map of Status values to their wire tags.
// The tags are the values stored in the database and shown on manifests.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "DESCONOCIDO",
		StatusNotReceived: "NO_RECEPTADO",
		StatusWarehoused:  "EN_BODEGA",
		StatusInTransit:   "EN_TRANSITO",
		StatusDelivered:   "ENTREGADO",
		StatusReturned:    "DEVUELTO",
		StatusRetained:    "RETENIDO",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNotReceived: "NO_RECEPTADO",
		StatusWarehoused:  "EN_BODEGA",
		StatusInTransit:   "EN_TRANSITO",
		StatusDelivered:   "ENTREGADO",
		StatusReturned:    "DEVUELTO",
		StatusRetained:    "RETENIDO",
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status wire tag ("NO_RECEPTADO", "EN_BODEGA", ...).
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, which render as "DESCONOCIDO".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// StatusFromString converts a wire tag back to a Status.
// Used when restoring packages from persistence or parsing API input.
//
// Returns:
//   - the matching Status and nil on success
//   - (StatusUnknown, error) if the tag does not name a valid status
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}
