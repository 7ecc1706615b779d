package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreatePullCommandIsNotConstructed = errors.New(
	"CreatePullCommand must be created via NewCreatePullCommand constructor",
)

// CreatePullCommand represents a request to create a sack for a common
// destination, optionally filling it with packages right away.
type CreatePullCommand struct { //nolint:recvcheck //using for validation
	pullID        kernel.UUID
	commonDestiny string
	size          pull.Size
	packageIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePullCommand creates a command to create a sack. packageIDs may
// be empty; listed packages are attached only if not already sacked.
func NewCreatePullCommand(
	pullID kernel.UUID,
	commonDestiny string,
	size pull.Size,
	packageIDs []kernel.UUID,
) (CreatePullCommand, error) {
	cmd := CreatePullCommand{
		size:       size,
		packageIDs: packageIDs,
		guard:      guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setPullID(pullID),
		cmd.setCommonDestiny(commonDestiny),
		cmd.setPackageIDs(packageIDs),
	)
	if err != nil {
		return CreatePullCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePullCommand) Validate() error {
	return c.guard.Validate(ErrCreatePullCommandIsNotConstructed)
}

// PullID returns the identifier for the new sack.
func (c CreatePullCommand) PullID() kernel.UUID {
	return c.pullID
}

// CommonDestiny returns the destination shared by the sack's packages.
func (c CreatePullCommand) CommonDestiny() string {
	return c.commonDestiny
}

// Size returns the physical sack size.
func (c CreatePullCommand) Size() pull.Size {
	return c.size
}

// PackageIDs returns the packages to attach on creation.
func (c CreatePullCommand) PackageIDs() []kernel.UUID {
	return c.packageIDs
}

func (c *CreatePullCommand) setPullID(pullID kernel.UUID) error {
	if err := pullID.Validate(); err != nil {
		return err
	}
	c.pullID = pullID
	return nil
}

func (c *CreatePullCommand) setCommonDestiny(commonDestiny string) error {
	if commonDestiny == "" {
		return errs.NewValueIsRequiredError("commonDestiny")
	}
	c.commonDestiny = commonDestiny
	return nil
}

func (c *CreatePullCommand) setPackageIDs(packageIDs []kernel.UUID) error {
	for _, packageID := range packageIDs {
		if err := packageID.Validate(); err != nil {
			return err
		}
	}
	return nil
}
