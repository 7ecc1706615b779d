package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/pull"
)

// CreatePullCommandHandler creates sacks. When the command lists packages
// they are attached in the same transaction; packages already assigned to
// another sack are left untouched rather than stolen.
type CreatePullCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreatePullCommandHandler creates a handler for sack creation.
func NewCreatePullCommandHandler(uowFactory ShipmentUoWFactory) CreatePullCommandHandler {
	return CreatePullCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sack creation command.
func (h *CreatePullCommandHandler) Handle(ctx context.Context, cmd CreatePullCommand) error {
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

	newPull, err := pull.NewPull(cmd.PullID(), cmd.CommonDestiny(), cmd.Size())
	if err != nil {
		return err
	}

	pullRepo := uow.PullRepository()
	if err = pullRepo.Add(ctx, newPull); err != nil {
		return err
	}

	packageRepo := uow.PackageRepository()
	for _, packageID := range cmd.PackageIDs() {
		pkg, getErr := packageRepo.Get(ctx, packageID)
		if getErr != nil {
			return getErr
		}

		if pkg.PullID() != nil {
			continue
		}

		if assignErr := pkg.AssignToPull(newPull.ID()); assignErr != nil {
			return assignErr
		}

		if updErr := packageRepo.Update(ctx, pkg); updErr != nil {
			return updErr
		}
	}

	return uow.Commit(ctx)
}
