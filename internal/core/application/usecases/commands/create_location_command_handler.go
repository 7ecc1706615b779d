package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/catalog"
)

// CreateLocationCommandHandler registers serviced destinations.
type CreateLocationCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location
// registration.
func NewCreateLocationCommandHandler(uowFactory CatalogUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location registration command.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
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

	location, err := catalog.NewLocation(cmd.LocationID(), cmd.City(), cmd.Province())
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Add(ctx, location); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
