package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/pkg/errs"
)

// ChangeDispatchStatusCommandHandler moves dispatches through their
// lifecycle. Transition rules live in the dispatch aggregate; the handler
// only routes the requested target status to the matching transition.
type ChangeDispatchStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewChangeDispatchStatusCommandHandler creates a handler for dispatch
// status changes.
func NewChangeDispatchStatusCommandHandler(uowFactory DispatchUoWFactory) ChangeDispatchStatusCommandHandler {
	return ChangeDispatchStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *ChangeDispatchStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDispatchStatusCommand) error {
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

	dispatchRepo := uow.DispatchRepository()

	target, err := dispatchRepo.Get(ctx, cmd.DispatchID())
	if err != nil {
		return err
	}

	switch cmd.NewStatus() {
	case dispatch.StatusInProgress:
		err = target.Start()
	case dispatch.StatusCompleted:
		err = target.Complete()
	case dispatch.StatusCancelled:
		err = target.Cancel()
	default:
		err = errs.NewValueIsInvalidError("newStatus: " + cmd.NewStatus().String() + " is not a reachable status")
	}
	if err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
