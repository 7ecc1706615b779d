package commands

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateDispatchCommandIsNotConstructed = errors.New(
	"CreateDispatchCommand must be created via NewCreateDispatchCommand constructor",
)

// CreateDispatchCommand represents a request to plan a dispatch for a
// date: a set of sacks plus loose packages leaving the warehouse together.
type CreateDispatchCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	date       time.Time
	notes      string
	pullIDs    []kernel.UUID
	packageIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDispatchCommand creates a command to plan a dispatch. Both
// member lists may be empty for a dispatch planned ahead of its contents.
func NewCreateDispatchCommand(
	dispatchID kernel.UUID,
	date time.Time,
	notes string,
	pullIDs []kernel.UUID,
	packageIDs []kernel.UUID,
) (CreateDispatchCommand, error) {
	cmd := CreateDispatchCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setDispatchID(dispatchID),
		cmd.setDate(date),
		cmd.setPullIDs(pullIDs),
		cmd.setPackageIDs(packageIDs),
	)
	if err != nil {
		return CreateDispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateDispatchCommandIsNotConstructed)
}

// DispatchID returns the identifier for the new dispatch.
func (c CreateDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// Date returns the dispatch date.
func (c CreateDispatchCommand) Date() time.Time {
	return c.date
}

// Notes returns the free-form dispatch notes.
func (c CreateDispatchCommand) Notes() string {
	return c.notes
}

// PullIDs returns the sacks included in the dispatch.
func (c CreateDispatchCommand) PullIDs() []kernel.UUID {
	return c.pullIDs
}

// PackageIDs returns the loose packages included in the dispatch.
func (c CreateDispatchCommand) PackageIDs() []kernel.UUID {
	return c.packageIDs
}

func (c *CreateDispatchCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}
	c.dispatchID = dispatchID
	return nil
}

func (c *CreateDispatchCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *CreateDispatchCommand) setPullIDs(pullIDs []kernel.UUID) error {
	for _, pullID := range pullIDs {
		if err := pullID.Validate(); err != nil {
			return err
		}
	}
	c.pullIDs = pullIDs
	return nil
}

func (c *CreateDispatchCommand) setPackageIDs(packageIDs []kernel.UUID) error {
	for _, packageID := range packageIDs {
		if err := packageID.Validate(); err != nil {
			return err
		}
	}
	c.packageIDs = packageIDs
	return nil
}
