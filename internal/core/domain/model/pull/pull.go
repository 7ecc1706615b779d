// Package pull provides the Pull (sack) aggregate: a bundle of packages
// sharing a destination, optionally grouped under a batch.
package pull

import (
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrPullIsNotConstructed is returned when a Pull instance was not
	// created through the NewPull constructor.
	ErrPullIsNotConstructed = errors.New("Pull must be created via NewPull constructor")

	// ErrDestinationMismatch is returned when attaching a pull to a batch
	// whose destination differs from the pull's common destiny.
	ErrDestinationMismatch = errors.New("pull destination does not match batch destination")
)

// DestinationMismatchError reports the conflicting destinations when a pull
// cannot join a batch.
type DestinationMismatchError struct {
	PullDestiny  string
	BatchDestiny string
}

// NewDestinationMismatchError creates a DestinationMismatchError.
func NewDestinationMismatchError(pullDestiny, batchDestiny string) *DestinationMismatchError {
	return &DestinationMismatchError{
		PullDestiny:  pullDestiny,
		BatchDestiny: batchDestiny,
	}
}

// Error implements the error interface.
func (e *DestinationMismatchError) Error() string {
	return fmt.Sprintf("%s: pull destiny is %q, batch destiny is %q",
		ErrDestinationMismatch, e.PullDestiny, e.BatchDestiny)
}

// Unwrap returns the sentinel for errors.Is checks.
func (e *DestinationMismatchError) Unwrap() error {
	return ErrDestinationMismatch
}

// Pull groups packages with a common destination.
//
// Invariants:
//   - CommonDestiny and Size are required.
//   - A pull inside a batch shares the batch's destination; AttachToBatch
//     enforces the match.
//
// The pull stores its own agency and guide number, but when it belongs to
// a batch those fields have no authority: the resolver always computes the
// effective values live from the batch. No stored copy is synchronized.
type Pull struct {
	id                kernel.UUID
	commonDestiny     string
	size              Size
	batchID           *kernel.UUID
	transportAgencyID *kernel.UUID
	guideNumber       string
	barcodePath       string

	isConstructed bool
}

// NewPull creates a Pull with a validated destination and size.
func NewPull(id kernel.UUID, commonDestiny string, size Size) (*Pull, error) {
	p := &Pull{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCommonDestiny(commonDestiny),
		p.setSize(size),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePull reconstructs a Pull from persistence.
func RestorePull(
	id kernel.UUID,
	commonDestiny string,
	size Size,
	batchID *kernel.UUID,
	transportAgencyID *kernel.UUID,
	guideNumber string,
	barcodePath string,
) (*Pull, error) {
	p, err := NewPull(id, commonDestiny, size)
	if err != nil {
		return nil, err
	}

	p.batchID = batchID
	p.transportAgencyID = transportAgencyID
	p.guideNumber = guideNumber
	p.barcodePath = barcodePath
	return p, nil
}

// Validate ensures the Pull was created through its constructor.
func (p *Pull) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPullIsNotConstructed
	}
	return nil
}

// IsEqual compares two pulls by their unique identifiers.
func (p *Pull) IsEqual(other *Pull) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pull's unique identifier.
func (p *Pull) ID() kernel.UUID {
	return p.id
}

// CommonDestiny returns the pull's own destination string.
func (p *Pull) CommonDestiny() string {
	return p.commonDestiny
}

// Size returns the pull's size class.
func (p *Pull) Size() Size {
	return p.size
}

// BatchID returns the containing batch's ID, or nil for a loose pull.
func (p *Pull) BatchID() *kernel.UUID {
	return p.batchID
}

// TransportAgencyID returns the pull's own transport agency, or nil.
// When the pull belongs to a batch with an agency, this value is masked
// during resolution.
func (p *Pull) TransportAgencyID() *kernel.UUID {
	return p.transportAgencyID
}

// GuideNumber returns the pull's own guide number, possibly empty.
func (p *Pull) GuideNumber() string {
	return p.guideNumber
}

// BarcodePath returns the stored path of the pull's barcode image,
// possibly empty. The image itself is generated elsewhere.
func (p *Pull) BarcodePath() string {
	return p.barcodePath
}

// AttachToBatch places the pull inside a batch after checking that both
// share the same destination.
//
// Returns:
//   - nil on success
//   - *DestinationMismatchError when the destinations differ
func (p *Pull) AttachToBatch(b *batch.Batch) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Destiny() != p.commonDestiny {
		return NewDestinationMismatchError(p.commonDestiny, b.Destiny())
	}

	id := b.ID()
	p.batchID = &id
	return nil
}

// DetachFromBatch removes the pull from its batch.
func (p *Pull) DetachFromBatch() {
	p.batchID = nil
}

// AssignTransportAgency sets the pull's own transport agency.
func (p *Pull) AssignTransportAgency(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.transportAgencyID = &agencyID
	return nil
}

// UnassignTransportAgency clears the pull's own transport agency.
func (p *Pull) UnassignTransportAgency() {
	p.transportAgencyID = nil
}

// SetGuideNumber sets the pull's own guide number.
func (p *Pull) SetGuideNumber(guideNumber string) {
	p.guideNumber = guideNumber
}

// SetBarcodePath stores the path of a generated barcode image.
func (p *Pull) SetBarcodePath(path string) {
	p.barcodePath = path
}

func (p *Pull) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pull) setCommonDestiny(commonDestiny string) error {
	if commonDestiny == "" {
		return errs.NewValueIsRequiredError("commonDestiny")
	}
	p.commonDestiny = commonDestiny
	return nil
}

func (p *Pull) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}
