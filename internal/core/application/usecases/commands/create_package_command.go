package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageOptions carries the optional fields of a new package:
// everything a manual entry or import row may supply beyond the required
// recipient data.
type CreatePackageOptions struct {
	NroMaster         string
	AgencyGuideNumber string
	Notes             string
	Hashtags          []string
	TransportAgencyID *kernel.UUID
	DeliveryAgencyID  *kernel.UUID
}

// CreatePackageCommand represents a request to register a new package.
// The guide number must not be in use; the handler pre-checks it and
// returns a DuplicateGuideNumberError otherwise.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID   kernel.UUID
	guideNumber string
	name        string
	address     string
	city        string
	province    string
	phone       string
	options     CreatePackageOptions

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// The required recipient fields mirror the package aggregate's invariants;
// detailed validation happens in the aggregate constructor, so only the
// command identity is validated here.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	guideNumber string,
	name string,
	address string,
	city string,
	province string,
	phone string,
	options CreatePackageOptions,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guideNumber: guideNumber,
		name:        name,
		address:     address,
		city:        city,
		province:    province,
		phone:       phone,
		options:     options,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier for the new package.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// GuideNumber returns the new package's guide number.
func (c CreatePackageCommand) GuideNumber() string {
	return c.guideNumber
}

// Name returns the recipient name.
func (c CreatePackageCommand) Name() string {
	return c.name
}

// Address returns the delivery address.
func (c CreatePackageCommand) Address() string {
	return c.address
}

// City returns the destination city.
func (c CreatePackageCommand) City() string {
	return c.city
}

// Province returns the destination province.
func (c CreatePackageCommand) Province() string {
	return c.province
}

// Phone returns the recipient phone number.
func (c CreatePackageCommand) Phone() string {
	return c.phone
}

// Options returns the optional package fields.
func (c CreatePackageCommand) Options() CreatePackageOptions {
	return c.options
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}
