package commands

import (
	"context"
)

// AddPullToBatchCommandHandler places a sack in a lot. The sack's common
// destiny must match the lot's destiny; a DestinationMismatchError is
// returned otherwise.
type AddPullToBatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddPullToBatchCommandHandler creates a handler for sack-to-lot
// assignment.
func NewAddPullToBatchCommandHandler(uowFactory ShipmentUoWFactory) AddPullToBatchCommandHandler {
	return AddPullToBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AddPullToBatchCommandHandler) Handle(ctx context.Context, cmd AddPullToBatchCommand) error {
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

	targetPull, err := uow.PullRepository().Get(ctx, cmd.PullID())
	if err != nil {
		return err
	}

	targetBatch, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = targetPull.AttachToBatch(targetBatch); err != nil {
		return err
	}

	if err = uow.PullRepository().Update(ctx, targetPull); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
