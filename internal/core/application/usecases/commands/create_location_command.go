package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand represents a request to register a serviced
// city/province destination.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	city       string
	province   string

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a location.
func NewCreateLocationCommand(locationID kernel.UUID, city, province string) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setCity(city),
		cmd.setProvince(province),
	)
	if err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier for the new location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// City returns the location's city.
func (c CreateLocationCommand) City() string {
	return c.city
}

// Province returns the location's province.
func (c CreateLocationCommand) Province() string {
	return c.province
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *CreateLocationCommand) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	c.province = province
	return nil
}
