package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateTransportAgencyCommandIsNotConstructed = errors.New(
	"CreateTransportAgencyCommand must be created via NewCreateTransportAgencyCommand constructor",
)

// CreateTransportAgencyCommand represents a request to register a carrier.
type CreateTransportAgencyCommand struct { //nolint:recvcheck //using for validation
	agencyID      kernel.UUID
	name          string
	phone         string
	email         string
	address       string
	contactPerson string

	guard guard.ConstructorGuard
}

// NewCreateTransportAgencyCommand creates a command to register a carrier.
// Email, address, and contact person are optional.
func NewCreateTransportAgencyCommand(
	agencyID kernel.UUID,
	name string,
	phone string,
	email string,
	address string,
	contactPerson string,
) (CreateTransportAgencyCommand, error) {
	cmd := CreateTransportAgencyCommand{
		email:         email,
		address:       address,
		contactPerson: contactPerson,
		guard:         guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setName(name),
		cmd.setPhone(phone),
	)
	if err != nil {
		return CreateTransportAgencyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportAgencyCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportAgencyCommandIsNotConstructed)
}

// AgencyID returns the identifier for the new carrier.
func (c CreateTransportAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Name returns the carrier name.
func (c CreateTransportAgencyCommand) Name() string {
	return c.name
}

// Phone returns the carrier contact phone.
func (c CreateTransportAgencyCommand) Phone() string {
	return c.phone
}

// Email returns the carrier contact email, possibly empty.
func (c CreateTransportAgencyCommand) Email() string {
	return c.email
}

// Address returns the carrier address, possibly empty.
func (c CreateTransportAgencyCommand) Address() string {
	return c.address
}

// ContactPerson returns the carrier contact person, possibly empty.
func (c CreateTransportAgencyCommand) ContactPerson() string {
	return c.contactPerson
}

func (c *CreateTransportAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}

func (c *CreateTransportAgencyCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateTransportAgencyCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
