package services

import (
	"fmt"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/pkg/errs"
)

// SourceLevel tags which containment level supplied a resolved attribute.
// Used by the UI for provenance badges.
type SourceLevel string

const (
	// SourceBatch means the value came from the batch.
	SourceBatch SourceLevel = "batch"

	// SourcePull means the value came from the pull.
	SourcePull SourceLevel = "pull"

	// SourcePackage means the value came from the package itself, either
	// because the package is loose or because the chain resolved to
	// nothing and the package level is the reported origin.
	SourcePackage SourceLevel = "package"
)

// DataSource reports, per attribute, which level supplied the effective
// value. Each attribute is computed independently: an agency can come from
// the batch while the guide comes from the pull.
type DataSource struct {
	Destiny SourceLevel
	Agency  SourceLevel
	Guide   SourceLevel
}

// PullShipment is an in-memory snapshot of a pull and its (optional)
// containing batch, loaded once at the boundary. The resolver works only
// on snapshots so resolution is pure and needs no storage access.
type PullShipment struct {
	Pull  *pull.Pull
	Batch *batch.Batch
}

// NewPullShipment builds a consistent snapshot. Batch must be nil exactly
// when the pull has no batch reference, and must match the reference
// otherwise.
func NewPullShipment(p *pull.Pull, b *batch.Batch) (PullShipment, error) {
	if err := p.Validate(); err != nil {
		return PullShipment{}, err
	}

	switch {
	case p.BatchID() == nil && b != nil:
		return PullShipment{}, errs.NewValueIsInvalidError("pull has no batch but a batch was supplied")
	case p.BatchID() != nil:
		if b == nil {
			return PullShipment{}, errs.NewValueIsRequiredError("batch")
		}
		if err := b.Validate(); err != nil {
			return PullShipment{}, err
		}
		if !p.BatchID().IsEqual(b.ID()) {
			return PullShipment{}, errs.NewValueIsInvalidError(
				fmt.Sprintf("batch %s does not contain pull %s", b.ID(), p.ID()),
			)
		}
	}

	return PullShipment{Pull: p, Batch: b}, nil
}

// PackageShipment is an in-memory snapshot of a package and its (optional)
// containment chain: the pull it sits in and that pull's batch.
type PackageShipment struct {
	Package *parcel.Package
	Pull    *pull.Pull
	Batch   *batch.Batch
}

// NewPackageShipment builds a consistent snapshot. Pull must be nil exactly
// when the package is loose; the pull/batch pair follows the same rules as
// NewPullShipment.
func NewPackageShipment(pkg *parcel.Package, p *pull.Pull, b *batch.Batch) (PackageShipment, error) {
	if err := pkg.Validate(); err != nil {
		return PackageShipment{}, err
	}

	if pkg.PullID() == nil {
		if p != nil || b != nil {
			return PackageShipment{}, errs.NewValueIsInvalidError("package has no pull but a pull or batch was supplied")
		}
		return PackageShipment{Package: pkg}, nil
	}

	if p == nil {
		return PackageShipment{}, errs.NewValueIsRequiredError("pull")
	}
	if !pkg.PullID().IsEqual(p.ID()) {
		return PackageShipment{}, errs.NewValueIsInvalidError(
			fmt.Sprintf("pull %s does not contain package %s", p.ID(), pkg.ID()),
		)
	}

	pullShipment, err := NewPullShipment(p, b)
	if err != nil {
		return PackageShipment{}, err
	}

	return PackageShipment{Package: pkg, Pull: pullShipment.Pull, Batch: pullShipment.Batch}, nil
}

func (s PackageShipment) pullShipment() PullShipment {
	return PullShipment{Pull: s.Pull, Batch: s.Batch}
}

// ShipmentResolver is a domain service that computes the effective
// {agency, guide number, destination} of any package or pull, applying the
// three-level override chain Package -> Pull -> Batch, and reports where
// each value came from.
//
// Override rules:
//   - A batch's destiny always wins when the pull belongs to a batch.
//   - A batch's agency wins only when the batch actually has one; the same
//     for its guide number. Absent batch values fall through to the pull.
//   - A package inside a pull delegates everything to the pull's
//     resolution; a loose package supplies its own fields.
//
// All methods are pure reads over the snapshot; nothing is cached and
// nothing is mutated.
type ShipmentResolver struct{}

// NewShipmentResolver creates a new ShipmentResolver instance.
func NewShipmentResolver() ShipmentResolver {
	return ShipmentResolver{}
}

// EffectiveDestiny resolves a pull's destination. The batch destiny always
// wins when present, even if it differs from the pull's stored destiny
// (the attach-time invariant keeps them equal; this is not re-validated
// at read time).
func (r ShipmentResolver) EffectiveDestiny(s PullShipment) string {
	if s.Batch != nil {
		return s.Batch.Destiny()
	}
	return s.Pull.CommonDestiny()
}

// EffectiveAgency resolves a pull's transport agency. The batch agency
// wins only when the batch has one; otherwise the pull's own agency is
// returned, which may be nil.
func (r ShipmentResolver) EffectiveAgency(s PullShipment) *kernel.UUID {
	if s.Batch != nil && s.Batch.TransportAgencyID() != nil {
		return s.Batch.TransportAgencyID()
	}
	return s.Pull.TransportAgencyID()
}

// EffectiveGuideNumber resolves a pull's guide number. The batch guide
// wins only when non-empty; otherwise the pull's own guide is returned.
func (r ShipmentResolver) EffectiveGuideNumber(s PullShipment) string {
	if s.Batch != nil && s.Batch.GuideNumber() != "" {
		return s.Batch.GuideNumber()
	}
	return s.Pull.GuideNumber()
}

// PullDataSource reports which level supplied each of the pull's three
// resolved attributes.
func (r ShipmentResolver) PullDataSource(s PullShipment) DataSource {
	ds := DataSource{
		Destiny: SourcePull,
		Agency:  SourcePull,
		Guide:   SourcePull,
	}
	if s.Batch != nil {
		ds.Destiny = SourceBatch
		if s.Batch.TransportAgencyID() != nil {
			ds.Agency = SourceBatch
		}
		if s.Batch.GuideNumber() != "" {
			ds.Guide = SourceBatch
		}
	}
	return ds
}

// ShippingAgency resolves a package's effective transport agency.
// Priority: batch agency > pull agency > package's own agency.
func (r ShipmentResolver) ShippingAgency(s PackageShipment) *kernel.UUID {
	if s.Pull != nil {
		return r.EffectiveAgency(s.pullShipment())
	}
	return s.Package.TransportAgencyID()
}

// ShippingGuideNumber resolves a package's effective guide number.
// Priority: batch guide > pull guide > package's agency guide number.
func (r ShipmentResolver) ShippingGuideNumber(s PackageShipment) string {
	if s.Pull != nil {
		return r.EffectiveGuideNumber(s.pullShipment())
	}
	return s.Package.AgencyGuideNumber()
}

// ShippingDestiny resolves a package's effective destination.
// Priority: batch destiny > pull destiny > "{city}, {province}".
func (r ShipmentResolver) ShippingDestiny(s PackageShipment) string {
	if s.Pull != nil {
		return r.EffectiveDestiny(s.pullShipment())
	}
	return fmt.Sprintf("%s, %s", s.Package.City(), s.Package.Province())
}

// PackageDataSource reports which level supplied each of the package's
// resolved attributes. For a package inside a pull, agency and guide fall
// back to the package tag when the chain resolved to nothing, so the UI
// badge never points at a level that produced an empty value.
func (r ShipmentResolver) PackageDataSource(s PackageShipment) DataSource {
	if s.Pull == nil {
		return DataSource{
			Destiny: SourcePackage,
			Agency:  SourcePackage,
			Guide:   SourcePackage,
		}
	}

	ps := s.pullShipment()
	ds := r.PullDataSource(ps)
	if r.EffectiveAgency(ps) == nil {
		ds.Agency = SourcePackage
	}
	if r.EffectiveGuideNumber(ps) == "" {
		ds.Guide = SourcePackage
	}
	return ds
}
