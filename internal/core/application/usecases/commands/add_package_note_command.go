package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAddPackageNoteCommandIsNotConstructed = errors.New(
	"AddPackageNoteCommand must be created via NewAddPackageNoteCommand constructor",
)

// AddPackageNoteCommand represents a request to append a timestamped note
// to a package. Notes also feed the delivery flag detection (fragile,
// mornings only, urgent and so on).
type AddPackageNoteCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewAddPackageNoteCommand creates a command to add a note to a package.
func NewAddPackageNoteCommand(packageID kernel.UUID, note string) (AddPackageNoteCommand, error) {
	cmd := AddPackageNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setNote(note),
	)
	if err != nil {
		return AddPackageNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPackageNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageNoteCommandIsNotConstructed)
}

// PackageID returns the target package identifier.
func (c AddPackageNoteCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Note returns the note text.
func (c AddPackageNoteCommand) Note() string {
	return c.note
}

func (c *AddPackageNoteCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *AddPackageNoteCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.note = note
	return nil
}
