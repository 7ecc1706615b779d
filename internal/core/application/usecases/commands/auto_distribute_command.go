package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAutoDistributeCommandIsNotConstructed = errors.New(
	"AutoDistributeCommand must be created via NewAutoDistributeCommand constructor",
)

// DistributionBucket declares one sack of an auto-distribution: its
// identity, size, and how many packages it can hold.
type DistributionBucket struct {
	PullID      kernel.UUID
	Size        pull.Size
	MaxPackages int
}

// AutoDistributeCommand represents a request to build a lot from a flat
// list of packages, splitting them over declared sacks in order. Each
// package may be listed once, and the declared capacity must cover every
// listed package.
type AutoDistributeCommand struct { //nolint:recvcheck //using for validation
	batchID           kernel.UUID
	destiny           string
	transportAgencyID *kernel.UUID
	guideNumber       string
	packageIDs        []kernel.UUID
	buckets           []DistributionBucket

	guard guard.ConstructorGuard
}

// NewAutoDistributeCommand creates a command to auto-distribute packages
// into a new lot.
func NewAutoDistributeCommand(
	batchID kernel.UUID,
	destiny string,
	transportAgencyID *kernel.UUID,
	guideNumber string,
	packageIDs []kernel.UUID,
	buckets []DistributionBucket,
) (AutoDistributeCommand, error) {
	cmd := AutoDistributeCommand{
		transportAgencyID: transportAgencyID,
		guideNumber:       guideNumber,
		guard:             guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setDestiny(destiny),
		cmd.setPackageIDs(packageIDs),
		cmd.setBuckets(buckets),
	)
	if err != nil {
		return AutoDistributeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoDistributeCommand) Validate() error {
	return c.guard.Validate(ErrAutoDistributeCommandIsNotConstructed)
}

// BatchID returns the identifier for the new lot.
func (c AutoDistributeCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Destiny returns the lot's destination.
func (c AutoDistributeCommand) Destiny() string {
	return c.destiny
}

// TransportAgencyID returns the carrier, or nil when unassigned.
func (c AutoDistributeCommand) TransportAgencyID() *kernel.UUID {
	return c.transportAgencyID
}

// GuideNumber returns the lot-level guide number, possibly empty.
func (c AutoDistributeCommand) GuideNumber() string {
	return c.guideNumber
}

// PackageIDs returns the packages to distribute, in submission order.
func (c AutoDistributeCommand) PackageIDs() []kernel.UUID {
	return c.packageIDs
}

// Buckets returns the declared sacks, in fill order.
func (c AutoDistributeCommand) Buckets() []DistributionBucket {
	return c.buckets
}

func (c *AutoDistributeCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	c.batchID = batchID
	return nil
}

func (c *AutoDistributeCommand) setDestiny(destiny string) error {
	if destiny == "" {
		return errs.NewValueIsRequiredError("destiny")
	}
	c.destiny = destiny
	return nil
}

func (c *AutoDistributeCommand) setPackageIDs(packageIDs []kernel.UUID) error {
	if len(packageIDs) == 0 {
		return errs.NewValueIsRequiredError("packageIDs")
	}

	seen := make(map[kernel.UUID]bool)
	for _, packageID := range packageIDs {
		if err := packageID.Validate(); err != nil {
			return err
		}
		if seen[packageID] {
			return errs.NewValueIsInvalidErrorWithCause(
				"packageIDs",
				errors.New("package "+packageID.String()+" listed more than once"),
			)
		}
		seen[packageID] = true
	}

	c.packageIDs = packageIDs
	return nil
}

func (c *AutoDistributeCommand) setBuckets(buckets []DistributionBucket) error {
	if len(buckets) == 0 {
		return errs.NewValueIsRequiredError("buckets")
	}

	for _, bucket := range buckets {
		if err := bucket.PullID.Validate(); err != nil {
			return err
		}
		if err := bucket.Size.Validate(); err != nil {
			return err
		}
		if bucket.MaxPackages <= 0 {
			return errs.NewValueIsInvalidError("buckets: maxPackages must be positive")
		}
	}

	c.buckets = buckets
	return nil
}
