package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/dispatch"
)

// CreateDispatchCommandHandler plans dispatches. Every referenced sack
// and package must exist; the dispatch starts in the planned status.
type CreateDispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateDispatchCommandHandler creates a handler for dispatch planning.
func NewCreateDispatchCommandHandler(uowFactory DispatchUoWFactory) CreateDispatchCommandHandler {
	return CreateDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch planning command.
func (h *CreateDispatchCommandHandler) Handle(ctx context.Context, cmd CreateDispatchCommand) error {
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

	newDispatch, err := dispatch.NewDispatch(cmd.DispatchID(), cmd.Date())
	if err != nil {
		return err
	}

	if cmd.Notes() != "" {
		newDispatch.SetNotes(cmd.Notes())
	}

	pullRepo := uow.PullRepository()
	for _, pullID := range cmd.PullIDs() {
		if _, err = pullRepo.Get(ctx, pullID); err != nil {
			return err
		}
		if err = newDispatch.AddPull(pullID); err != nil {
			return err
		}
	}

	packageRepo := uow.PackageRepository()
	for _, packageID := range cmd.PackageIDs() {
		if _, err = packageRepo.Get(ctx, packageID); err != nil {
			return err
		}
		if err = newDispatch.AddPackage(packageID); err != nil {
			return err
		}
	}

	if err = uow.DispatchRepository().Add(ctx, newDispatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
