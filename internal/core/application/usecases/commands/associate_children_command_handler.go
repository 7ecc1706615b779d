package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/services"
)

// ErrNoChildrenAssociated is returned when every requested association
// failed; the transaction is rolled back in that case.
var ErrNoChildrenAssociated = errors.New("no packages could be associated as children")

// ChildAssociation reports the outcome for a single package in a bulk
// association request.
type ChildAssociation struct {
	ChildID     kernel.UUID
	GuideNumber string
	Err         error
}

// AssociateChildrenResult summarizes a bulk association. Successful and
// failed items are reported separately so callers can show per-package
// feedback.
type AssociateChildrenResult struct {
	Associated []ChildAssociation
	Failed     []ChildAssociation
}

// AssociateChildrenCommandHandler links existing packages beneath a
// parent. Items that fail validation are skipped rather than aborting the
// whole request; only a fully failed request rolls back.
type AssociateChildrenCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAssociateChildrenCommandHandler creates a handler for bulk child
// association.
func NewAssociateChildrenCommandHandler(uowFactory PackageUoWFactory) AssociateChildrenCommandHandler {
	return AssociateChildrenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk association command. Returns the per-package
// outcomes; ErrNoChildrenAssociated when nothing could be linked.
func (h *AssociateChildrenCommandHandler) Handle(
	ctx context.Context,
	cmd AssociateChildrenCommand,
) (AssociateChildrenResult, error) {
	var result AssociateChildrenResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()

	parent, err := packageRepo.Get(ctx, cmd.ParentID())
	if err != nil {
		return result, err
	}

	hierarchyGuard, err := services.NewHierarchyGuard(packageRepo)
	if err != nil {
		return result, err
	}

	for _, childID := range cmd.ChildIDs() {
		child, getErr := packageRepo.Get(ctx, childID)
		if getErr != nil {
			result.Failed = append(result.Failed, ChildAssociation{ChildID: childID, Err: getErr})
			continue
		}

		if guardErr := hierarchyGuard.CanAddChild(ctx, parent, child); guardErr != nil {
			result.Failed = append(result.Failed, ChildAssociation{
				ChildID:     childID,
				GuideNumber: child.GuideNumber(),
				Err:         guardErr,
			})
			continue
		}

		if setErr := child.SetParent(parent.ID()); setErr != nil {
			result.Failed = append(result.Failed, ChildAssociation{
				ChildID:     childID,
				GuideNumber: child.GuideNumber(),
				Err:         setErr,
			})
			continue
		}

		if updErr := packageRepo.Update(ctx, child); updErr != nil {
			return result, updErr
		}

		result.Associated = append(result.Associated, ChildAssociation{
			ChildID:     childID,
			GuideNumber: child.GuideNumber(),
		})
	}

	if len(result.Associated) == 0 {
		return result, ErrNoChildrenAssociated
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	return result, nil
}
