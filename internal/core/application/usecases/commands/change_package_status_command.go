package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrChangePackageStatusCommandIsNotConstructed = errors.New(
	"ChangePackageStatusCommand must be created via NewChangePackageStatusCommand constructor",
)

// ChangePackageStatusCommand represents a request to move a package to a
// new pipeline status. The transition is recorded in the package's status
// history.
type ChangePackageStatusCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewChangePackageStatusCommand creates a command to change a package's status.
func NewChangePackageStatusCommand(
	packageID kernel.UUID,
	newStatus parcel.Status,
) (ChangePackageStatusCommand, error) {
	cmd := ChangePackageStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setNewStatus(newStatus),
	)
	if err != nil {
		return ChangePackageStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePackageStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePackageStatusCommandIsNotConstructed)
}

// PackageID returns the target package identifier.
func (c ChangePackageStatusCommand) PackageID() kernel.UUID {
	return c.packageID
}

// NewStatus returns the status the package should move to.
func (c ChangePackageStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

func (c *ChangePackageStatusCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *ChangePackageStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
