package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// CreateBatchCommandHandler assembles a lot and its sacks atomically.
// Each created sack inherits the lot's destination, carrier, and guide
// number so lot-level data resolves consistently for its contents.
type CreateBatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for lot assembly.
func NewCreateBatchCommandHandler(uowFactory ShipmentUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot assembly command. Packages already assigned to
// a sack make the whole request fail; partial lots are not created.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	newBatch, err := batch.NewBatch(cmd.BatchID(), cmd.Destiny())
	if err != nil {
		return err
	}

	if cmd.TransportAgencyID() != nil {
		if err = newBatch.AssignTransportAgency(*cmd.TransportAgencyID()); err != nil {
			return err
		}
	}
	if cmd.GuideNumber() != "" {
		newBatch.SetGuideNumber(cmd.GuideNumber())
	}

	if err = uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	for _, spec := range cmd.PullSpecs() {
		if err = h.createBatchPull(ctx, uow, newBatch, spec); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// createBatchPull creates one sack inside the lot and fills it with the
// packages the pull spec lists. The packages must be free of any sack.
func (h *CreateBatchCommandHandler) createBatchPull(
	ctx context.Context,
	uow ShipmentUoW,
	newBatch *batch.Batch,
	spec BatchPullSpec,
) error {
	newPull, err := pull.NewPull(spec.PullID, newBatch.Destiny(), spec.Size)
	if err != nil {
		return err
	}

	if newBatch.TransportAgencyID() != nil {
		if err = newPull.AssignTransportAgency(*newBatch.TransportAgencyID()); err != nil {
			return err
		}
	}
	if newBatch.GuideNumber() != "" {
		newPull.SetGuideNumber(newBatch.GuideNumber())
	}

	if err = newPull.AttachToBatch(newBatch); err != nil {
		return err
	}

	if err = uow.PullRepository().Add(ctx, newPull); err != nil {
		return err
	}

	return assignPackagesToPull(ctx, uow.PackageRepository(), newPull.ID(), spec.PackageIDs)
}

// assignPackagesToPull places the listed packages in a sack, refusing any
// that already belong to one.
func assignPackagesToPull(
	ctx context.Context,
	packageRepo ports.PackageRepository,
	pullID kernel.UUID,
	packageIDs []kernel.UUID,
) error {
	packages, err := packageRepo.GetByIDs(ctx, packageIDs)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if pkg.PullID() != nil {
			return errs.NewValueIsInvalidError("packageIDs: package " + pkg.GuideNumber() + " is already in a sack")
		}

		if err = pkg.AssignToPull(pullID); err != nil {
			return err
		}

		if err = packageRepo.Update(ctx, pkg); err != nil {
			return err
		}
	}

	return nil
}
