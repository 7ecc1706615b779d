package commands

import (
	"context"
)

// ChangePackageStatusCommandHandler handles package status transitions.
// Repeating the current status is a no-op, so callers may safely submit
// scanner events without deduplicating them first.
type ChangePackageStatusCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewChangePackageStatusCommandHandler creates a handler for status changes.
func NewChangePackageStatusCommandHandler(uowFactory PackageUoWFactory) ChangePackageStatusCommandHandler {
	return ChangePackageStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *ChangePackageStatusCommandHandler) Handle(ctx context.Context, cmd ChangePackageStatusCommand) error {
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

	if err = pkg.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
