package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

// MigratePackageCommandHandler handles guide migrations. A migration
// creates a new package under the reissued guide number that mirrors the
// original's shipment data and audit trail, then links the original
// beneath it as a child. The original keeps its guide number so old
// labels remain traceable.
//
// Migrations are refused when the new guide number is already in use or
// when the package itself has children.
type MigratePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewMigratePackageCommandHandler creates a handler for guide migrations.
func NewMigratePackageCommandHandler(uowFactory PackageUoWFactory) MigratePackageCommandHandler {
	return MigratePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the migration command.
func (h *MigratePackageCommandHandler) Handle(ctx context.Context, cmd MigratePackageCommand) error {
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

	original, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	exists, err := packageRepo.ExistsByGuideNumber(ctx, cmd.NewGuideNumber())
	if err != nil {
		return err
	}
	if exists {
		return parcel.NewDuplicateGuideNumberError(cmd.NewGuideNumber())
	}

	children, err := packageRepo.GetByParent(ctx, original.ID())
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return parcel.NewMigrationBlockedError(original.GuideNumber())
	}

	parent, err := buildMigrationParent(cmd, original)
	if err != nil {
		return err
	}

	original.RecordGuideMigration(cmd.NewGuideNumber())
	if err = original.SetParent(parent.ID()); err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, parent); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, original); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildMigrationParent creates the new package under the reissued guide.
// It mirrors every shipment attribute of the original, including pull and
// agency assignments, and inherits the original's notes and histories.
func buildMigrationParent(cmd MigratePackageCommand, original *parcel.Package) (*parcel.Package, error) {
	parent, err := parcel.RestorePackage(
		cmd.NewPackageID(),
		cmd.NewGuideNumber(),
		original.NroMaster(),
		original.AgencyGuideNumber(),
		original.Name(),
		original.Address(),
		original.City(),
		original.Province(),
		original.Phone(),
		original.Status(),
		"", // audit trail is copied below
		original.Hashtags(),
		original.PullID(),
		original.TransportAgencyID(),
		original.DeliveryAgencyID(),
		nil,
		"",
		"",
		"",
	)
	if err != nil {
		return nil, err
	}

	parent.CopyAuditTrail(original)
	parent.RecordMigrationOrigin(original.GuideNumber())
	return parent, nil
}
