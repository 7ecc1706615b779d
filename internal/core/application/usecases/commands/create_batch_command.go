package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateBatchCommandIsNotConstructed = errors.New(
	"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
)

// BatchPullSpec describes one sack to create inside a new lot: its
// identity, physical size, and the packages it should contain.
type BatchPullSpec struct {
	PullID     kernel.UUID
	Size       pull.Size
	PackageIDs []kernel.UUID
}

// CreateBatchCommand represents a request to assemble a lot together with
// its sacks in one operation. Each listed package may appear in only one
// sack and must not be assigned elsewhere already.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID           kernel.UUID
	destiny           string
	transportAgencyID *kernel.UUID
	guideNumber       string
	pullSpecs         []BatchPullSpec

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to assemble a lot. The transport
// agency and guide number are optional; pullSpecs may be empty for a lot
// created ahead of its sacks.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	destiny string,
	transportAgencyID *kernel.UUID,
	guideNumber string,
	pullSpecs []BatchPullSpec,
) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{
		transportAgencyID: transportAgencyID,
		guideNumber:       guideNumber,
		guard:             guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setDestiny(destiny),
		cmd.setPullSpecs(pullSpecs),
	)
	if err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the identifier for the new lot.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Destiny returns the lot's destination.
func (c CreateBatchCommand) Destiny() string {
	return c.destiny
}

// TransportAgencyID returns the carrier, or nil when unassigned.
func (c CreateBatchCommand) TransportAgencyID() *kernel.UUID {
	return c.transportAgencyID
}

// GuideNumber returns the lot-level guide number, possibly empty.
func (c CreateBatchCommand) GuideNumber() string {
	return c.guideNumber
}

// PullSpecs returns the sacks to create inside the lot.
func (c CreateBatchCommand) PullSpecs() []BatchPullSpec {
	return c.pullSpecs
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setDestiny(destiny string) error {
	if destiny == "" {
		return errs.NewValueIsRequiredError("destiny")
	}
	c.destiny = destiny
	return nil
}

func (c *CreateBatchCommand) setPullSpecs(pullSpecs []BatchPullSpec) error {
	seen := make(map[kernel.UUID]bool)

	for _, spec := range pullSpecs {
		if err := spec.PullID.Validate(); err != nil {
			return err
		}
		if err := spec.Size.Validate(); err != nil {
			return err
		}

		for _, packageID := range spec.PackageIDs {
			if err := packageID.Validate(); err != nil {
				return err
			}
			if seen[packageID] {
				return errs.NewValueIsInvalidErrorWithCause(
					"pullSpecs",
					errors.New("package "+packageID.String()+" listed in more than one sack"),
				)
			}
			seen[packageID] = true
		}
	}

	c.pullSpecs = pullSpecs
	return nil
}
