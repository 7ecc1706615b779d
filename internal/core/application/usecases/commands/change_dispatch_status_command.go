package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrChangeDispatchStatusCommandIsNotConstructed = errors.New(
	"ChangeDispatchStatusCommand must be created via NewChangeDispatchStatusCommand constructor",
)

// ChangeDispatchStatusCommand represents a request to move a dispatch
// through its lifecycle: start it, complete it, or cancel it.
type ChangeDispatchStatusCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	newStatus  dispatch.Status

	guard guard.ConstructorGuard
}

// NewChangeDispatchStatusCommand creates a command to change a dispatch's
// status.
func NewChangeDispatchStatusCommand(
	dispatchID kernel.UUID,
	newStatus dispatch.Status,
) (ChangeDispatchStatusCommand, error) {
	cmd := ChangeDispatchStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setDispatchID(dispatchID),
		cmd.setNewStatus(newStatus),
	)
	if err != nil {
		return ChangeDispatchStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDispatchStatusCommandIsNotConstructed)
}

// DispatchID returns the target dispatch identifier.
func (c ChangeDispatchStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// NewStatus returns the status the dispatch should move to.
func (c ChangeDispatchStatusCommand) NewStatus() dispatch.Status {
	return c.newStatus
}

func (c *ChangeDispatchStatusCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}
	c.dispatchID = dispatchID
	return nil
}

func (c *ChangeDispatchStatusCommand) setNewStatus(newStatus dispatch.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
