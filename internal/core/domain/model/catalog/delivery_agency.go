package catalog

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrDeliveryAgencyIsNotConstructed is returned when a DeliveryAgency
// instance was not created through the NewDeliveryAgency constructor.
var ErrDeliveryAgencyIsNotConstructed = errors.New(
	"DeliveryAgency must be created via NewDeliveryAgency constructor",
)

// DeliveryAgency is the local last-mile handler at a destination city.
// Unlike a TransportAgency, which moves freight between cities, a
// DeliveryAgency distributes packages to final recipients within one city,
// so its location reference is mandatory.
type DeliveryAgency struct {
	id            kernel.UUID
	name          string
	locationID    kernel.UUID
	address       string
	phone         string
	contactPerson string
	active        bool

	isConstructed bool
}

// NewDeliveryAgency creates an active DeliveryAgency bound to a location.
func NewDeliveryAgency(id kernel.UUID, name string, locationID kernel.UUID) (*DeliveryAgency, error) {
	agency := &DeliveryAgency{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		agency.setID(id),
		agency.setName(name),
		agency.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return agency, nil
}

// RestoreDeliveryAgency reconstructs a DeliveryAgency from persistence.
func RestoreDeliveryAgency(
	id kernel.UUID,
	name string,
	locationID kernel.UUID,
	address string,
	phone string,
	contactPerson string,
	active bool,
) (*DeliveryAgency, error) {
	agency, err := NewDeliveryAgency(id, name, locationID)
	if err != nil {
		return nil, err
	}

	agency.address = address
	agency.phone = phone
	agency.contactPerson = contactPerson
	agency.active = active
	return agency, nil
}

// Validate ensures the agency was created through its constructor.
func (a *DeliveryAgency) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrDeliveryAgencyIsNotConstructed
	}
	return nil
}

// ID returns the agency's unique identifier.
func (a *DeliveryAgency) ID() kernel.UUID {
	return a.id
}

// Name returns the agency name.
func (a *DeliveryAgency) Name() string {
	return a.name
}

// LocationID returns the identifier of the city this agency serves.
func (a *DeliveryAgency) LocationID() kernel.UUID {
	return a.locationID
}

// Address returns the agency's street address, possibly empty.
func (a *DeliveryAgency) Address() string {
	return a.address
}

// Phone returns the agency's contact phone, possibly empty.
func (a *DeliveryAgency) Phone() string {
	return a.phone
}

// ContactPerson returns the agency's contact person, possibly empty.
func (a *DeliveryAgency) ContactPerson() string {
	return a.contactPerson
}

// IsActive reports whether the agency is available for new assignments.
func (a *DeliveryAgency) IsActive() bool {
	return a.active
}

// SetContactDetails updates the optional contact fields.
func (a *DeliveryAgency) SetContactDetails(address, phone, contactPerson string) {
	a.address = address
	a.phone = phone
	a.contactPerson = contactPerson
}

// Deactivate soft-disables the agency. Existing references stay intact.
func (a *DeliveryAgency) Deactivate() {
	a.active = false
}

// Activate re-enables the agency for new assignments.
func (a *DeliveryAgency) Activate() {
	a.active = true
}

func (a *DeliveryAgency) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAgency) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *DeliveryAgency) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	a.locationID = locationID
	return nil
}
