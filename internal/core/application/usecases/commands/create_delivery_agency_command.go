package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateDeliveryAgencyCommandIsNotConstructed = errors.New(
	"CreateDeliveryAgencyCommand must be created via NewCreateDeliveryAgencyCommand constructor",
)

// CreateDeliveryAgencyCommand represents a request to register a last-mile
// delivery agency serving a location.
type CreateDeliveryAgencyCommand struct { //nolint:recvcheck //using for validation
	agencyID      kernel.UUID
	name          string
	locationID    kernel.UUID
	address       string
	phone         string
	contactPerson string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryAgencyCommand creates a command to register a delivery
// agency. Address, phone, and contact person are optional.
func NewCreateDeliveryAgencyCommand(
	agencyID kernel.UUID,
	name string,
	locationID kernel.UUID,
	address string,
	phone string,
	contactPerson string,
) (CreateDeliveryAgencyCommand, error) {
	cmd := CreateDeliveryAgencyCommand{
		address:       address,
		phone:         phone,
		contactPerson: contactPerson,
		guard:         guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setName(name),
		cmd.setLocationID(locationID),
	)
	if err != nil {
		return CreateDeliveryAgencyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryAgencyCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryAgencyCommandIsNotConstructed)
}

// AgencyID returns the identifier for the new agency.
func (c CreateDeliveryAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Name returns the agency name.
func (c CreateDeliveryAgencyCommand) Name() string {
	return c.name
}

// LocationID returns the location the agency serves.
func (c CreateDeliveryAgencyCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Address returns the agency address, possibly empty.
func (c CreateDeliveryAgencyCommand) Address() string {
	return c.address
}

// Phone returns the agency phone, possibly empty.
func (c CreateDeliveryAgencyCommand) Phone() string {
	return c.phone
}

// ContactPerson returns the agency contact person, possibly empty.
func (c CreateDeliveryAgencyCommand) ContactPerson() string {
	return c.contactPerson
}

func (c *CreateDeliveryAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}

func (c *CreateDeliveryAgencyCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDeliveryAgencyCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}
