package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

// CreatePackageCommandHandler handles the business logic for package
// registration. New packages start in the "not received" status and carry
// an initial status history entry.
//
// Example:
//
//	handler := NewCreatePackageCommandHandler(uowFactory)
//	packageID := kernel.NewUUID()
//	cmd, _ := NewCreatePackageCommand(packageID, "G-1001", "Ana Torres",
//	    "Av. Amazonas 100", "Quito", "Pichincha", "0991234567",
//	    CreatePackageOptions{})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("package registration failed: %w", err)
//	}
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package registration command.
// Rejects guide numbers that are already in use with a
// DuplicateGuideNumberError before constructing the aggregate.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
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

	exists, err := packageRepo.ExistsByGuideNumber(ctx, cmd.GuideNumber())
	if err != nil {
		return err
	}
	if exists {
		return parcel.NewDuplicateGuideNumberError(cmd.GuideNumber())
	}

	pkg, err := parcel.NewPackage(
		cmd.PackageID(),
		cmd.GuideNumber(),
		cmd.Name(),
		cmd.Address(),
		cmd.City(),
		cmd.Province(),
		cmd.Phone(),
	)
	if err != nil {
		return err
	}

	if err = applyPackageOptions(pkg, cmd.Options()); err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyPackageOptions(pkg *parcel.Package, opts CreatePackageOptions) error {
	if opts.NroMaster != "" {
		pkg.SetNroMaster(opts.NroMaster)
	}
	if opts.AgencyGuideNumber != "" {
		pkg.SetAgencyGuideNumber(opts.AgencyGuideNumber)
	}
	if opts.Notes != "" {
		if err := pkg.AddNote(opts.Notes); err != nil {
			return err
		}
	}
	for _, tag := range opts.Hashtags {
		pkg.AddHashtag(tag)
	}
	if opts.TransportAgencyID != nil {
		if err := pkg.AssignTransportAgency(*opts.TransportAgencyID); err != nil {
			return err
		}
	}
	if opts.DeliveryAgencyID != nil {
		if err := pkg.AssignDeliveryAgency(*opts.DeliveryAgencyID); err != nil {
			return err
		}
	}
	return nil
}
