package services

import (
	"context"
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrInvalidHierarchy is returned when a parent/child mutation would
	// corrupt the package hierarchy (self-parenting, double parents, or
	// cycles).
	ErrInvalidHierarchy = errors.New("invalid package hierarchy")

	// ErrSuspectedCycle is returned when a traversal hits the depth cap,
	// which only happens if the forest invariant was violated by a write
	// path that bypassed the guard.
	ErrSuspectedCycle = errors.New("suspected cycle in package hierarchy")

	// ErrHierarchyGuardIsNotConstructed is returned when a HierarchyGuard
	// was not created through NewHierarchyGuard.
	ErrHierarchyGuardIsNotConstructed = errors.New("HierarchyGuard must be created via NewHierarchyGuard constructor")
)

// maxHierarchyDepth caps ancestor traversals. Real hierarchies are two or
// three levels deep; reaching the cap means the graph is corrupted.
const maxHierarchyDepth = 100

// InvalidHierarchyError carries the human-readable reason a parent/child
// mutation was rejected.
type InvalidHierarchyError struct {
	Reason string
}

// NewInvalidHierarchyError creates an InvalidHierarchyError.
func NewInvalidHierarchyError(reason string) *InvalidHierarchyError {
	return &InvalidHierarchyError{Reason: reason}
}

// Error implements the error interface.
func (e *InvalidHierarchyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidHierarchy, e.Reason)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *InvalidHierarchyError) Unwrap() error {
	return ErrInvalidHierarchy
}

// SuspectedCycleError reports the package whose ancestor chain exceeded
// the depth cap.
type SuspectedCycleError struct {
	PackageID kernel.UUID
}

// NewSuspectedCycleError creates a SuspectedCycleError.
func NewSuspectedCycleError(packageID kernel.UUID) *SuspectedCycleError {
	return &SuspectedCycleError{PackageID: packageID}
}

// Error implements the error interface.
func (e *SuspectedCycleError) Error() string {
	return fmt.Sprintf("%s: traversal from package %s exceeded %d hops", ErrSuspectedCycle, e.PackageID, maxHierarchyDepth)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *SuspectedCycleError) Unwrap() error {
	return ErrSuspectedCycle
}

// PackageSource is the read port the guard traverses the hierarchy
// through. Implemented by the package repository.
type PackageSource interface {
	// Get retrieves a package by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetByParent retrieves the direct children of a package.
	GetByParent(ctx context.Context, parentID kernel.UUID) ([]*parcel.Package, error)
}

// HierarchyGuard is the single authority over the parent/child package
// graph. Every mutation path that sets a parent link must pass CanAddChild
// first; as long as that holds, the graph is provably a forest. The
// traversal methods carry visited-set and depth guards as a second line of
// defense against graphs corrupted by writes that bypassed the guard.
type HierarchyGuard struct {
	packages PackageSource

	isConstructed bool
}

// NewHierarchyGuard creates a HierarchyGuard over the given source.
func NewHierarchyGuard(packages PackageSource) (HierarchyGuard, error) {
	if packages == nil {
		return HierarchyGuard{}, errs.NewValueIsRequiredError("packages")
	}
	return HierarchyGuard{packages: packages, isConstructed: true}, nil
}

// Validate ensures the guard was created through its constructor.
func (g HierarchyGuard) Validate() error {
	if !g.isConstructed {
		return ErrHierarchyGuardIsNotConstructed
	}
	return nil
}

// CanAddChild checks whether candidate may become a child of parent.
// Never mutates.
//
// Rejected with *InvalidHierarchyError when:
//   - candidate is parent itself
//   - candidate already has a parent (re-parenting requires an explicit
//     removal first)
//   - parent sits anywhere in candidate's subtree, i.e. linking would
//     close a cycle
//
// Returns nil when the link is safe.
func (g HierarchyGuard) CanAddChild(ctx context.Context, parent *parcel.Package, candidate *parcel.Package) error {
	if err := parent.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if candidate.ID().IsEqual(parent.ID()) {
		return NewInvalidHierarchyError("a package cannot be its own child")
	}
	if candidate.ParentID() != nil {
		return NewInvalidHierarchyError(
			fmt.Sprintf("package %s already has a parent", candidate.GuideNumber()),
		)
	}

	// A cycle closes when either package already sits in the other's
	// ancestor chain. With candidate.parent unset its own chain is
	// trivial, so the parent-side walk is the one that matters: it
	// catches linking a root above its own descendant.
	cycle, err := g.WouldCreateCycle(ctx, candidate, parent.ID())
	if err != nil {
		return err
	}
	if !cycle {
		cycle, err = g.WouldCreateCycle(ctx, parent, candidate.ID())
		if err != nil {
			return err
		}
	}
	if cycle {
		return NewInvalidHierarchyError("linking these packages would create a cycle in the hierarchy")
	}

	return nil
}

// WouldCreateCycle walks start's ancestor chain and reports whether it
// ever reaches target. A visited set guards against chains that are
// already cyclic: a repeated node also counts as a cycle.
func (g HierarchyGuard) WouldCreateCycle(ctx context.Context, start *parcel.Package, target kernel.UUID) (bool, error) {
	if err := start.Validate(); err != nil {
		return false, err
	}

	if start.ID().IsEqual(target) {
		return true, nil
	}

	visited := map[kernel.UUID]struct{}{}
	current := start
	for {
		if current.ID().IsEqual(target) {
			return true, nil
		}
		if _, seen := visited[current.ID()]; seen {
			return true, nil
		}
		visited[current.ID()] = struct{}{}

		if current.ParentID() == nil {
			return false, nil
		}
		next, err := g.packages.Get(ctx, *current.ParentID())
		if err != nil {
			return false, err
		}
		current = next
	}
}

// HierarchyLevel counts ancestor hops from pkg to its root: 0 for a root,
// 1 for a child, and so on. The walk is capped at maxHierarchyDepth; when
// the cap is hit the capped level is returned together with a
// *SuspectedCycleError, since a genuine hierarchy never gets that deep.
func (g HierarchyGuard) HierarchyLevel(ctx context.Context, pkg *parcel.Package) (int, error) {
	if err := pkg.Validate(); err != nil {
		return 0, err
	}

	level := 0
	current := pkg
	for current.ParentID() != nil {
		level++
		if level > maxHierarchyDepth {
			return maxHierarchyDepth, NewSuspectedCycleError(pkg.ID())
		}
		next, err := g.packages.Get(ctx, *current.ParentID())
		if err != nil {
			return 0, err
		}
		current = next
	}

	return level, nil
}

// RootParent walks to the topmost ancestor of pkg, returning pkg itself
// when it has no parent. A visited set stops the walk on corrupted graphs;
// in that case the last package reached before the repeat is returned.
func (g HierarchyGuard) RootParent(ctx context.Context, pkg *parcel.Package) (*parcel.Package, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	visited := map[kernel.UUID]struct{}{}
	current := pkg
	for current.ParentID() != nil {
		if _, seen := visited[current.ID()]; seen {
			break
		}
		visited[current.ID()] = struct{}{}

		next, err := g.packages.Get(ctx, *current.ParentID())
		if err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}

// AllDescendants collects pkg's full subtree in pre-order: each child
// followed by that child's descendants. Relies on the forest invariant
// already holding; the depth cap is the only guard here.
func (g HierarchyGuard) AllDescendants(ctx context.Context, pkg *parcel.Package) ([]*parcel.Package, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return g.collectDescendants(ctx, pkg.ID(), 0)
}

func (g HierarchyGuard) collectDescendants(ctx context.Context, parentID kernel.UUID, depth int) ([]*parcel.Package, error) {
	if depth > maxHierarchyDepth {
		return nil, NewSuspectedCycleError(parentID)
	}

	children, err := g.packages.GetByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	var descendants []*parcel.Package
	for _, child := range children {
		descendants = append(descendants, child)
		sub, err := g.collectDescendants(ctx, child.ID(), depth+1)
		if err != nil {
			return nil, err
		}
		descendants = append(descendants, sub...)
	}
	return descendants, nil
}
