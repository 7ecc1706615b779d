package dispatch

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispatch day.
//
// State transitions:
//
//	Planned ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status: the dispatch is being assembled.
	StatusPlanned

	// StatusInProgress means the dispatch trucks are out.
	StatusInProgress

	// StatusCompleted means every shipment of the day went out. Final.
	StatusCompleted

	// StatusCancelled means the dispatch day was called off. Final.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "DESCONOCIDO",
		StatusPlanned:    "PLANIFICADO",
		StatusInProgress: "EN_CURSO",
		StatusCompleted:  "COMPLETADO",
		StatusCancelled:  "CANCELADO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlanned:    "PLANIFICADO",
		StatusInProgress: "EN_CURSO",
		StatusCompleted:  "COMPLETADO",
		StatusCancelled:  "CANCELADO",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status wire tag ("PLANIFICADO", "EN_CURSO", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// StatusFromString converts a wire tag back to a Status.
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

// Start transitions the status to InProgress.
func (s Status) Start() (Status, error) {
	if s != StatusPlanned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s),
		)
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled. Completed dispatches cannot
// be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusPlanned && s != StatusInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return StatusCancelled, nil
}
