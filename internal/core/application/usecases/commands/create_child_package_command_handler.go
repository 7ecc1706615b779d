package commands

import (
	"context"
	"fmt"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

// Guide numbers generated for children follow {parent}-H{N}. The counter
// search is capped so a pathological data set cannot loop forever.
const maxChildGuideAttempts = 10000

var errChildGuideExhausted = fmt.Errorf("could not generate a unique child guide number")

// CreateChildPackageCommandHandler registers a new package as a child of
// an existing one. Used when a shipment arrives split into several pieces
// that share a master guide.
type CreateChildPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreateChildPackageCommandHandler creates a handler for child package
// registration.
func NewCreateChildPackageCommandHandler(uowFactory PackageUoWFactory) CreateChildPackageCommandHandler {
	return CreateChildPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the child registration command. An explicit guide
// number must be unused; a generated one is derived from the parent's
// guide with an -H{N} suffix.
func (h *CreateChildPackageCommandHandler) Handle(ctx context.Context, cmd CreateChildPackageCommand) error {
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

	parent, err := packageRepo.Get(ctx, cmd.ParentID())
	if err != nil {
		return err
	}

	guideNumber := cmd.GuideNumber()
	if guideNumber == "" {
		guideNumber, err = nextChildGuideNumber(ctx, packageRepo, parent.GuideNumber())
		if err != nil {
			return err
		}
	} else {
		exists, existsErr := packageRepo.ExistsByGuideNumber(ctx, guideNumber)
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return parcel.NewDuplicateGuideNumberError(guideNumber)
		}
	}

	child, err := parcel.NewPackage(
		cmd.ChildID(),
		guideNumber,
		cmd.Name(),
		cmd.Address(),
		cmd.City(),
		cmd.Province(),
		cmd.Phone(),
	)
	if err != nil {
		return err
	}

	if err = applyPackageOptions(child, cmd.Options()); err != nil {
		return err
	}

	hierarchyGuard, err := services.NewHierarchyGuard(packageRepo)
	if err != nil {
		return err
	}

	if err = hierarchyGuard.CanAddChild(ctx, parent, child); err != nil {
		return err
	}

	if err = child.SetParent(parent.ID()); err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, child); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// nextChildGuideNumber finds the lowest unused {parentGuide}-H{N} suffix.
func nextChildGuideNumber(ctx context.Context, repo ports.PackageRepository, parentGuide string) (string, error) {
	for counter := 1; counter <= maxChildGuideAttempts; counter++ {
		candidate := fmt.Sprintf("%s-H%d", parentGuide, counter)

		exists, err := repo.ExistsByGuideNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", errChildGuideExhausted
}
