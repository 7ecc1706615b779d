package commands

import (
	"context"
)

// AddPackageNoteCommandHandler appends a note to a package and records the
// change in the notes history.
type AddPackageNoteCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAddPackageNoteCommandHandler creates a handler for note additions.
func NewAddPackageNoteCommandHandler(uowFactory PackageUoWFactory) AddPackageNoteCommandHandler {
	return AddPackageNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note addition command.
func (h *AddPackageNoteCommandHandler) Handle(ctx context.Context, cmd AddPackageNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.AddNote(cmd.Note()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
