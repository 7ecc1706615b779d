package catalog

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrTransportAgencyIsNotConstructed is returned when a TransportAgency
// instance was not created through the NewTransportAgency constructor.
var ErrTransportAgencyIsNotConstructed = errors.New(
	"TransportAgency must be created via NewTransportAgency constructor",
)

// TransportAgency is an inter-city carrier. Packages, pulls, and batches
// reference an agency but never own it; deactivation is a soft flag, not
// deletion, so historical shipments keep their agency reference.
//
// Invariants:
//   - Name is required and unique across agencies.
//   - Phone is required (the operational contact channel).
type TransportAgency struct {
	id            kernel.UUID
	name          string
	phone         string
	email         string
	address       string
	contactPerson string
	notes         string
	active        bool

	isConstructed bool
}

// NewTransportAgency creates an active TransportAgency with validation.
func NewTransportAgency(id kernel.UUID, name string, phone string) (*TransportAgency, error) {
	agency := &TransportAgency{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		agency.setID(id),
		agency.setName(name),
		agency.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return agency, nil
}

// RestoreTransportAgency reconstructs a TransportAgency from persistence
// without re-running creation defaults.
func RestoreTransportAgency(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	address string,
	contactPerson string,
	notes string,
	active bool,
) (*TransportAgency, error) {
	agency, err := NewTransportAgency(id, name, phone)
	if err != nil {
		return nil, err
	}

	agency.email = email
	agency.address = address
	agency.contactPerson = contactPerson
	agency.notes = notes
	agency.active = active
	return agency, nil
}

// Validate ensures the agency was created through its constructor.
func (a *TransportAgency) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrTransportAgencyIsNotConstructed
	}
	return nil
}

// IsEqual compares two agencies by their unique identifiers.
func (a *TransportAgency) IsEqual(other *TransportAgency) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agency's unique identifier.
func (a *TransportAgency) ID() kernel.UUID {
	return a.id
}

// Name returns the agency name.
func (a *TransportAgency) Name() string {
	return a.name
}

// Phone returns the agency's contact phone number.
func (a *TransportAgency) Phone() string {
	return a.phone
}

// Email returns the agency's contact email, possibly empty.
func (a *TransportAgency) Email() string {
	return a.email
}

// Address returns the agency's street address, possibly empty.
func (a *TransportAgency) Address() string {
	return a.address
}

// ContactPerson returns the agency's contact person, possibly empty.
func (a *TransportAgency) ContactPerson() string {
	return a.contactPerson
}

// Notes returns free-form notes about the agency.
func (a *TransportAgency) Notes() string {
	return a.notes
}

// IsActive reports whether the agency is available for new assignments.
func (a *TransportAgency) IsActive() bool {
	return a.active
}

// SetContactDetails updates the optional contact fields.
func (a *TransportAgency) SetContactDetails(email, address, contactPerson string) {
	a.email = email
	a.address = address
	a.contactPerson = contactPerson
}

// SetNotes replaces the agency's free-form notes.
func (a *TransportAgency) SetNotes(notes string) {
	a.notes = notes
}

// Deactivate soft-disables the agency. Existing references stay intact.
func (a *TransportAgency) Deactivate() {
	a.active = false
}

// Activate re-enables the agency for new assignments.
func (a *TransportAgency) Activate() {
	a.active = true
}

func (a *TransportAgency) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *TransportAgency) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *TransportAgency) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
