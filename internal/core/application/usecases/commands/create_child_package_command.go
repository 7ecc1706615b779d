package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateChildPackageCommandIsNotConstructed = errors.New(
	"CreateChildPackageCommand must be created via NewCreateChildPackageCommand constructor",
)

// CreateChildPackageCommand represents a request to register a new package
// directly under an existing parent. When no guide number is supplied the
// handler derives one from the parent's guide.
type CreateChildPackageCommand struct { //nolint:recvcheck //using for validation
	parentID    kernel.UUID
	childID     kernel.UUID
	guideNumber string
	name        string
	address     string
	city        string
	province    string
	phone       string
	options     CreatePackageOptions

	guard guard.ConstructorGuard
}

// NewCreateChildPackageCommand creates a command to register a child
// package. guideNumber may be empty, in which case one is generated from
// the parent's guide number.
func NewCreateChildPackageCommand(
	parentID kernel.UUID,
	childID kernel.UUID,
	guideNumber string,
	name string,
	address string,
	city string,
	province string,
	phone string,
	options CreatePackageOptions,
) (CreateChildPackageCommand, error) {
	cmd := CreateChildPackageCommand{
		guideNumber: guideNumber,
		name:        name,
		address:     address,
		city:        city,
		province:    province,
		phone:       phone,
		options:     options,
		guard:       guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setParentID(parentID),
		cmd.setChildID(childID),
	)
	if err != nil {
		return CreateChildPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateChildPackageCommand) Validate() error {
	return c.guard.Validate(ErrCreateChildPackageCommandIsNotConstructed)
}

// ParentID returns the identifier of the parent package.
func (c CreateChildPackageCommand) ParentID() kernel.UUID {
	return c.parentID
}

// ChildID returns the identifier for the new child package.
func (c CreateChildPackageCommand) ChildID() kernel.UUID {
	return c.childID
}

// GuideNumber returns the explicit guide number, or empty when one should
// be generated.
func (c CreateChildPackageCommand) GuideNumber() string {
	return c.guideNumber
}

// Name returns the recipient name.
func (c CreateChildPackageCommand) Name() string {
	return c.name
}

// Address returns the delivery address.
func (c CreateChildPackageCommand) Address() string {
	return c.address
}

// City returns the destination city.
func (c CreateChildPackageCommand) City() string {
	return c.city
}

// Province returns the destination province.
func (c CreateChildPackageCommand) Province() string {
	return c.province
}

// Phone returns the recipient phone number.
func (c CreateChildPackageCommand) Phone() string {
	return c.phone
}

// Options returns the optional package fields.
func (c CreateChildPackageCommand) Options() CreatePackageOptions {
	return c.options
}

func (c *CreateChildPackageCommand) setParentID(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}
	c.parentID = parentID
	return nil
}

func (c *CreateChildPackageCommand) setChildID(childID kernel.UUID) error {
	if err := childID.Validate(); err != nil {
		return err
	}
	c.childID = childID
	return nil
}
