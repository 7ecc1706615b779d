package catalog

import (
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through the NewLocation constructor.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a catalog entry for a destination city. It is immutable
// reference data: created by import tooling, looked up everywhere else.
//
// Uniqueness: the (city, province) pair is unique, and city itself is also
// globally unique in the current schema. The storage layer enforces both
// constraints.
type Location struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	city     string
	province string

	guard guard.ConstructorGuard
}

// NewLocation creates a Location with a validated city and province.
func NewLocation(id kernel.UUID, city string, province string) (Location, error) {
	location := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setID(id),
		location.setCity(city),
		location.setProvince(province),
	); err != nil {
		return Location{}, err
	}

	return location, nil
}

// Validate ensures the Location was created through its constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the location's unique identifier.
func (l Location) ID() kernel.UUID {
	return l.id
}

// City returns the destination city name.
func (l Location) City() string {
	return l.city
}

// Province returns the province or department the city belongs to.
func (l Location) Province() string {
	return l.province
}

// String returns "City, Province", the display form used on manifests
// and as the fallback destination of loose packages.
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.city, l.province)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Location) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	l.province = province
	return nil
}
