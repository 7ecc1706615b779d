package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAssociateChildrenCommandIsNotConstructed = errors.New(
	"AssociateChildrenCommand must be created via NewAssociateChildrenCommand constructor",
)

// AssociateChildrenCommand represents a request to link several existing
// packages beneath one parent in a single transaction.
type AssociateChildrenCommand struct { //nolint:recvcheck //using for validation
	parentID kernel.UUID
	childIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssociateChildrenCommand creates a command to associate existing
// packages as children of a parent. At least one child is required.
func NewAssociateChildrenCommand(parentID kernel.UUID, childIDs []kernel.UUID) (AssociateChildrenCommand, error) {
	cmd := AssociateChildrenCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setParentID(parentID),
		cmd.setChildIDs(childIDs),
	)
	if err != nil {
		return AssociateChildrenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssociateChildrenCommand) Validate() error {
	return c.guard.Validate(ErrAssociateChildrenCommandIsNotConstructed)
}

// ParentID returns the identifier of the parent package.
func (c AssociateChildrenCommand) ParentID() kernel.UUID {
	return c.parentID
}

// ChildIDs returns the identifiers of the packages to link.
func (c AssociateChildrenCommand) ChildIDs() []kernel.UUID {
	return c.childIDs
}

func (c *AssociateChildrenCommand) setParentID(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}
	c.parentID = parentID
	return nil
}

func (c *AssociateChildrenCommand) setChildIDs(childIDs []kernel.UUID) error {
	if len(childIDs) == 0 {
		return errs.NewValueIsRequiredError("childIDs")
	}

	for _, childID := range childIDs {
		if err := childID.Validate(); err != nil {
			return err
		}
	}

	c.childIDs = childIDs
	return nil
}
