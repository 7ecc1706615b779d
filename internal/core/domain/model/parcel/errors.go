package parcel

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateGuideNumber is returned when creating or renaming a
	// package to a guide number already in use. Commands check this
	// proactively; a storage unique constraint covers the race window.
	ErrDuplicateGuideNumber = errors.New("guide number already exists")

	// ErrMigrationBlocked is returned when attempting to migrate a
	// package that already has children. Migration keeps the hierarchy
	// exactly two levels deep: root plus leaves.
	ErrMigrationBlocked = errors.New("package with children cannot be migrated")
)

// DuplicateGuideNumberError reports the conflicting guide number.
type DuplicateGuideNumberError struct {
	GuideNumber string
}

// NewDuplicateGuideNumberError creates a DuplicateGuideNumberError.
func NewDuplicateGuideNumberError(guideNumber string) *DuplicateGuideNumberError {
	return &DuplicateGuideNumberError{GuideNumber: guideNumber}
}

// Error implements the error interface.
func (e *DuplicateGuideNumberError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateGuideNumber, e.GuideNumber)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *DuplicateGuideNumberError) Unwrap() error {
	return ErrDuplicateGuideNumber
}

// MigrationBlockedError reports the package whose migration was rejected.
type MigrationBlockedError struct {
	GuideNumber string
}

// NewMigrationBlockedError creates a MigrationBlockedError.
func NewMigrationBlockedError(guideNumber string) *MigrationBlockedError {
	return &MigrationBlockedError{GuideNumber: guideNumber}
}

// Error implements the error interface.
func (e *MigrationBlockedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMigrationBlocked, e.GuideNumber)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *MigrationBlockedError) Unwrap() error {
	return ErrMigrationBlocked
}
