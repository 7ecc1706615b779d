package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// AutoDistributeCommandHandler builds a lot from a flat package list by
// splitting it over the declared sacks in order. Capacity is verified
// before anything is created, so an undersized declaration fails fast
// with an InsufficientCapacityError.
type AutoDistributeCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	distributor services.SackDistributor
}

// NewAutoDistributeCommandHandler creates a handler for lot
// auto-distribution.
func NewAutoDistributeCommandHandler(uowFactory ShipmentUoWFactory) AutoDistributeCommandHandler {
	return AutoDistributeCommandHandler{
		uowFactory:  uowFactory,
		distributor: services.NewSackDistributor(),
	}
}

// Handle processes the auto-distribution command. Package order is
// preserved: the first packages fill the first sack, and so on.
func (h *AutoDistributeCommandHandler) Handle(ctx context.Context, cmd AutoDistributeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	bucketSpecs := make([]services.BucketSpec, 0, len(cmd.Buckets()))
	for _, bucket := range cmd.Buckets() {
		bucketSpecs = append(bucketSpecs, services.BucketSpec{
			Size:        bucket.Size,
			MaxPackages: bucket.MaxPackages,
		})
	}

	if err := h.distributor.ValidateCapacity(len(cmd.PackageIDs()), bucketSpecs); err != nil {
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

	packages, err := packageRepo.GetByIDs(ctx, cmd.PackageIDs())
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if pkg.PullID() != nil {
			return errs.NewValueIsInvalidError("packageIDs: package " + pkg.GuideNumber() + " is already in a sack")
		}
	}

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

	partitions, err := h.distributor.Distribute(packages, bucketSpecs)
	if err != nil {
		return err
	}

	pullRepo := uow.PullRepository()
	for i, bucket := range cmd.Buckets() {
		newPull, pullErr := pull.NewPull(bucket.PullID, newBatch.Destiny(), bucket.Size)
		if pullErr != nil {
			return pullErr
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

		if err = pullRepo.Add(ctx, newPull); err != nil {
			return err
		}

		for _, pkg := range partitions[i] {
			if err = pkg.AssignToPull(newPull.ID()); err != nil {
				return err
			}

			if err = packageRepo.Update(ctx, pkg); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
