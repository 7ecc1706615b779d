package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrMigratePackageCommandIsNotConstructed = errors.New(
	"MigratePackageCommand must be created via NewMigratePackageCommand constructor",
)

// MigratePackageCommand represents a guide migration: the carrier reissued
// a guide number, so a new package is created under the new guide as the
// migration parent and the original package is linked beneath it. The
// original keeps its own guide number.
type MigratePackageCommand struct { //nolint:recvcheck //using for validation
	packageID      kernel.UUID
	newPackageID   kernel.UUID
	newGuideNumber string

	guard guard.ConstructorGuard
}

// NewMigratePackageCommand creates a command to migrate a package to a new
// guide number. newPackageID identifies the migration parent to be created.
func NewMigratePackageCommand(
	packageID kernel.UUID,
	newPackageID kernel.UUID,
	newGuideNumber string,
) (MigratePackageCommand, error) {
	cmd := MigratePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setNewPackageID(newPackageID),
		cmd.setNewGuideNumber(newGuideNumber),
	)
	if err != nil {
		return MigratePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MigratePackageCommand) Validate() error {
	return c.guard.Validate(ErrMigratePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package being migrated.
func (c MigratePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// NewPackageID returns the identifier for the migration parent.
func (c MigratePackageCommand) NewPackageID() kernel.UUID {
	return c.newPackageID
}

// NewGuideNumber returns the reissued guide number.
func (c MigratePackageCommand) NewGuideNumber() string {
	return c.newGuideNumber
}

func (c *MigratePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *MigratePackageCommand) setNewPackageID(newPackageID kernel.UUID) error {
	if err := newPackageID.Validate(); err != nil {
		return err
	}
	c.newPackageID = newPackageID
	return nil
}

func (c *MigratePackageCommand) setNewGuideNumber(newGuideNumber string) error {
	if newGuideNumber == "" {
		return errs.NewValueIsRequiredError("newGuideNumber")
	}
	c.newGuideNumber = newGuideNumber
	return nil
}
