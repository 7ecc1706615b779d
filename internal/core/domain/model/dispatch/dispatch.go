// Package dispatch provides the Dispatch aggregate: a date-bounded grouping
// of pulls and loose packages consumed by reporting. A dispatch never
// participates in shipment-attribute resolution.
package dispatch

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrDispatchIsNotConstructed is returned when a Dispatch instance was not
// created through the NewDispatch constructor.
var ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch constructor")

// Dispatch groups the pulls and individual packages that leave the
// warehouse on one calendar date.
//
// Membership is by reference only: removing a dispatch detaches nothing
// and deletes nothing. Loose packages listed here are expected to have no
// pull of their own, since packages inside pulls are already covered by
// the pull list; the reporting queries deduplicate regardless.
type Dispatch struct {
	id         kernel.UUID
	date       time.Time
	status     Status
	notes      string
	pullIDs    []kernel.UUID
	packageIDs []kernel.UUID

	isConstructed bool
}

// NewDispatch creates a planned Dispatch for the given calendar date.
// The time portion of date is truncated to midnight UTC.
func NewDispatch(id kernel.UUID, date time.Time) (*Dispatch, error) {
	d := &Dispatch{
		status:        StatusPlanned,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDate(date),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispatch reconstructs a Dispatch from persistence.
func RestoreDispatch(
	id kernel.UUID,
	date time.Time,
	status Status,
	notes string,
	pullIDs []kernel.UUID,
	packageIDs []kernel.UUID,
) (*Dispatch, error) {
	d, err := NewDispatch(id, date)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.notes = notes
	d.pullIDs = pullIDs
	d.packageIDs = packageIDs
	return d, nil
}

// Validate ensures the Dispatch was created through its constructor.
func (d *Dispatch) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDispatchIsNotConstructed
	}
	return nil
}

// ID returns the dispatch's unique identifier.
func (d *Dispatch) ID() kernel.UUID {
	return d.id
}

// Date returns the dispatch calendar date (midnight UTC).
func (d *Dispatch) Date() time.Time {
	return d.date
}

// Status returns the dispatch lifecycle status.
func (d *Dispatch) Status() Status {
	return d.status
}

// Notes returns the free-text notes for the dispatch day.
func (d *Dispatch) Notes() string {
	return d.notes
}

// PullIDs returns the IDs of the pulls leaving on this dispatch.
func (d *Dispatch) PullIDs() []kernel.UUID {
	return d.pullIDs
}

// PackageIDs returns the IDs of the individual packages leaving on this
// dispatch (packages outside any pull).
func (d *Dispatch) PackageIDs() []kernel.UUID {
	return d.packageIDs
}

// SetNotes replaces the dispatch notes.
func (d *Dispatch) SetNotes(notes string) {
	d.notes = notes
}

// AddPull registers a pull for this dispatch day. Idempotent.
func (d *Dispatch) AddPull(pullID kernel.UUID) error {
	if err := pullID.Validate(); err != nil {
		return err
	}
	for _, id := range d.pullIDs {
		if id.IsEqual(pullID) {
			return nil
		}
	}
	d.pullIDs = append(d.pullIDs, pullID)
	return nil
}

// AddPackage registers an individual package for this dispatch day.
// Idempotent.
func (d *Dispatch) AddPackage(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	for _, id := range d.packageIDs {
		if id.IsEqual(packageID) {
			return nil
		}
	}
	d.packageIDs = append(d.packageIDs, packageID)
	return nil
}

// Start moves the dispatch to InProgress.
func (d *Dispatch) Start() error {
	status, err := d.status.Start()
	if err != nil {
		return err
	}
	d.status = status
	return nil
}

// Complete moves the dispatch to Completed.
func (d *Dispatch) Complete() error {
	status, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = status
	return nil
}

// Cancel moves the dispatch to Cancelled.
func (d *Dispatch) Cancel() error {
	status, err := d.status.Cancel()
	if err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Dispatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispatch) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	d.date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
