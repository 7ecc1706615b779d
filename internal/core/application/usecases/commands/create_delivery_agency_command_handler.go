package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/catalog"
)

// CreateDeliveryAgencyCommandHandler registers last-mile delivery
// agencies. The served location must already exist in the catalog.
type CreateDeliveryAgencyCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateDeliveryAgencyCommandHandler creates a handler for delivery
// agency registration.
func NewCreateDeliveryAgencyCommandHandler(uowFactory CatalogUoWFactory) CreateDeliveryAgencyCommandHandler {
	return CreateDeliveryAgencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery agency registration command.
func (h *CreateDeliveryAgencyCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryAgencyCommand) error {
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

	if _, err := uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	agency, err := catalog.NewDeliveryAgency(cmd.AgencyID(), cmd.Name(), cmd.LocationID())
	if err != nil {
		return err
	}

	if cmd.Address() != "" || cmd.Phone() != "" || cmd.ContactPerson() != "" {
		agency.SetContactDetails(cmd.Address(), cmd.Phone(), cmd.ContactPerson())
	}

	if err = uow.DeliveryAgencyRepository().Add(ctx, agency); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
