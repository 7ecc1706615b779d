package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrAddPullToBatchCommandIsNotConstructed = errors.New(
	"AddPullToBatchCommand must be created via NewAddPullToBatchCommand constructor",
)

// AddPullToBatchCommand represents a request to place an existing sack in
// a lot. Destinations must match; the sack keeps its own guide number.
type AddPullToBatchCommand struct { //nolint:recvcheck //using for validation
	pullID  kernel.UUID
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddPullToBatchCommand creates a command to add a sack to a lot.
func NewAddPullToBatchCommand(pullID, batchID kernel.UUID) (AddPullToBatchCommand, error) {
	cmd := AddPullToBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setPullID(pullID),
		cmd.setBatchID(batchID),
	)
	if err != nil {
		return AddPullToBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPullToBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddPullToBatchCommandIsNotConstructed)
}

// PullID returns the sack identifier.
func (c AddPullToBatchCommand) PullID() kernel.UUID {
	return c.pullID
}

// BatchID returns the lot identifier.
func (c AddPullToBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c *AddPullToBatchCommand) setPullID(pullID kernel.UUID) error {
	if err := pullID.Validate(); err != nil {
		return err
	}
	c.pullID = pullID
	return nil
}

func (c *AddPullToBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	c.batchID = batchID
	return nil
}
