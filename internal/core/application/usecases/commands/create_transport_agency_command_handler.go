package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/catalog"
)

// CreateTransportAgencyCommandHandler registers carriers.
type CreateTransportAgencyCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateTransportAgencyCommandHandler creates a handler for carrier
// registration.
func NewCreateTransportAgencyCommandHandler(uowFactory CatalogUoWFactory) CreateTransportAgencyCommandHandler {
	return CreateTransportAgencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h *CreateTransportAgencyCommandHandler) Handle(ctx context.Context, cmd CreateTransportAgencyCommand) error {
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

	agency, err := catalog.NewTransportAgency(cmd.AgencyID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	if cmd.Email() != "" || cmd.Address() != "" || cmd.ContactPerson() != "" {
		agency.SetContactDetails(cmd.Email(), cmd.Address(), cmd.ContactPerson())
	}

	if err = uow.TransportAgencyRepository().Add(ctx, agency); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
