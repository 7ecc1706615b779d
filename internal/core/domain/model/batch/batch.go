// Package batch provides the Batch (lot) aggregate: the top of the
// containment chain. A batch groups pulls that travel together and carries
// the destination, transport agency, and guide number that, when present,
// override everything beneath it during shipment resolution.
package batch

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrBatchIsNotConstructed is returned when a Batch instance was not
// created through the NewBatch constructor.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

// Batch groups pulls sharing transport arrangements.
//
// Invariants:
//   - Destiny is required.
//   - Every pull belonging to the batch has a matching common destiny;
//     the pull side enforces this on attachment.
//
// Agency and guide number are optional: a batch without them delegates
// those attributes to each pull during resolution.
type Batch struct {
	id                kernel.UUID
	destiny           string
	transportAgencyID *kernel.UUID
	guideNumber       string

	isConstructed bool
}

// NewBatch creates a Batch with a validated destination.
func NewBatch(id kernel.UUID, destiny string) (*Batch, error) {
	b := &Batch{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setDestiny(destiny),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a Batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	destiny string,
	transportAgencyID *kernel.UUID,
	guideNumber string,
) (*Batch, error) {
	b, err := NewBatch(id, destiny)
	if err != nil {
		return nil, err
	}

	b.transportAgencyID = transportAgencyID
	b.guideNumber = guideNumber
	return b, nil
}

// Validate ensures the Batch was created through its constructor.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// Destiny returns the batch's common destination.
func (b *Batch) Destiny() string {
	return b.destiny
}

// TransportAgencyID returns the batch-level transport agency, or nil.
func (b *Batch) TransportAgencyID() *kernel.UUID {
	return b.transportAgencyID
}

// GuideNumber returns the batch-level guide number, possibly empty.
func (b *Batch) GuideNumber() string {
	return b.guideNumber
}

// AssignTransportAgency sets the batch-level transport agency, which then
// overrides pull-level agencies during resolution.
func (b *Batch) AssignTransportAgency(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	b.transportAgencyID = &agencyID
	return nil
}

// UnassignTransportAgency clears the batch-level transport agency.
func (b *Batch) UnassignTransportAgency() {
	b.transportAgencyID = nil
}

// SetGuideNumber sets the batch-level guide number. An empty value means
// the batch has no guide of its own and pulls keep theirs.
func (b *Batch) SetGuideNumber(guideNumber string) {
	b.guideNumber = guideNumber
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setDestiny(destiny string) error {
	if destiny == "" {
		return errs.NewValueIsRequiredError("destiny")
	}
	b.destiny = destiny
	return nil
}
