package services

import (
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"
)

// ErrInsufficientCapacity is returned when the declared bucket capacities
// cannot absorb all packages submitted for distribution.
var ErrInsufficientCapacity = errors.New("insufficient sack capacity")

// InsufficientCapacityError reports how short the declared capacity is.
type InsufficientCapacityError struct {
	Declared int
	Required int
}

// NewInsufficientCapacityError creates an InsufficientCapacityError.
func NewInsufficientCapacityError(declared, required int) *InsufficientCapacityError {
	return &InsufficientCapacityError{Declared: declared, Required: required}
}

// Error implements the error interface.
func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: %d packages but only %d slots declared", ErrInsufficientCapacity, e.Required, e.Declared)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// BucketSpec declares one sack to create during auto-distribution: its
// size class and how many packages it absorbs at most.
type BucketSpec struct {
	Size        pull.Size
	MaxPackages int
}

// Validate checks the bucket's size and capacity.
func (b BucketSpec) Validate() error {
	if err := b.Size.Validate(); err != nil {
		return err
	}
	if b.MaxPackages <= 0 {
		return errs.NewValueIsOutOfRangeError("maxPackages", b.MaxPackages, 1, int(^uint(0)>>1))
	}
	return nil
}

// SackDistributor deterministically partitions a flat package list across
// bucket specs.
//
// Algorithm:
//   - Packages are taken in the exact order supplied by the caller; they
//     are never re-sorted.
//   - Buckets are filled strictly in the order given, each absorbing up to
//     its MaxPackages before the next one receives anything.
//   - Packages beyond the total declared capacity are left unassigned;
//     Distribute itself never fails on overflow. Callers wanting a hard
//     guarantee run ValidateCapacity first.
//
// The same input always yields the same partition.
type SackDistributor struct{}

// NewSackDistributor creates a new SackDistributor instance.
func NewSackDistributor() SackDistributor {
	return SackDistributor{}
}

// ValidateCapacity checks that the bucket specs can absorb packageCount
// packages.
//
// Returns:
//   - nil when the declared capacity suffices
//   - *InsufficientCapacityError otherwise, or a validation error for a
//     malformed spec
func (d SackDistributor) ValidateCapacity(packageCount int, buckets []BucketSpec) error {
	declared := 0
	for _, bucket := range buckets {
		if err := bucket.Validate(); err != nil {
			return err
		}
		declared += bucket.MaxPackages
	}

	if declared < packageCount {
		return NewInsufficientCapacityError(declared, packageCount)
	}
	return nil
}

// Distribute partitions packages across the buckets. The result has one
// slice per bucket, index-aligned with the input; a bucket past the point
// where packages ran out gets an empty slice. Overflow packages are simply
// not part of the result.
func (d SackDistributor) Distribute(packages []*parcel.Package, buckets []BucketSpec) ([][]*parcel.Package, error) {
	for _, bucket := range buckets {
		if err := bucket.Validate(); err != nil {
			return nil, err
		}
	}
	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return nil, err
		}
	}

	result := make([][]*parcel.Package, len(buckets))
	next := 0
	for i, bucket := range buckets {
		take := bucket.MaxPackages
		if remaining := len(packages) - next; take > remaining {
			take = remaining
		}
		result[i] = packages[next : next+take]
		next += take
	}

	return result, nil
}
