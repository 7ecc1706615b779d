package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not
	// created through the NewPackage factory method.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
)

// historyTimeLayout is the timestamp format used inside history entries.
const historyTimeLayout = "2006-01-02 15:04:05"

// Package represents one shippable parcel, the atomic unit of the system.
// It is the aggregate root for the recipient data, the audit histories, and
// two independent relationships:
//
//  1. Containment: Package -> Pull -> Batch (optional at each level), used
//     for shipment-attribute inheritance. The package only stores the pull
//     reference; the resolution itself lives in the services package.
//  2. Hierarchy: Package -> parent Package (optional), used for split or
//     relabeled shipments. Completely unrelated to containment and must
//     never form a cycle; mutation paths go through the hierarchy guard.
//
// Invariants:
//   - Guide number is required and globally unique (storage enforces the
//     uniqueness; commands pre-check it).
//   - Recipient name, address, city, province, and phone are required.
//   - Status is always a valid Status value; every change is appended to
//     the status history.
type Package struct {
	id                kernel.UUID
	guideNumber       string
	nroMaster         string
	agencyGuideNumber string

	name     string
	address  string
	city     string
	province string
	phone    string

	status   Status
	notes    string
	hashtags string

	pullID            *kernel.UUID
	transportAgencyID *kernel.UUID
	deliveryAgencyID  *kernel.UUID
	parentID          *kernel.UUID

	guideHistory  string
	statusHistory string
	notesHistory  string

	isConstructed bool
}

// NewPackage creates a new Package in StatusNotReceived with validation.
// The initial status is recorded as the first status-history entry.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - guideNumber: the package's own guide number (required, globally unique)
//   - name, address, city, province, phone: recipient data (all required)
//
// Returns:
//   - *Package: the created package if all validations pass
//   - error: joined validation errors if any field is invalid
func NewPackage(
	id kernel.UUID,
	guideNumber string,
	name string,
	address string,
	city string,
	province string,
	phone string,
) (*Package, error) {
	pkg := &Package{
		status:        StatusNotReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setGuideNumber(guideNumber),
		pkg.setName(name),
		pkg.setAddress(address),
		pkg.setCity(city),
		pkg.setProvince(province),
		pkg.setPhone(phone),
	); err != nil {
		return nil, err
	}

	pkg.statusHistory = historyEntry(pkg.status.String())
	return pkg, nil
}

// RestorePackage reconstructs a Package from persistence without creation
// side effects (no fresh history entries).
func RestorePackage(
	id kernel.UUID,
	guideNumber string,
	nroMaster string,
	agencyGuideNumber string,
	name string,
	address string,
	city string,
	province string,
	phone string,
	status Status,
	notes string,
	hashtags string,
	pullID *kernel.UUID,
	transportAgencyID *kernel.UUID,
	deliveryAgencyID *kernel.UUID,
	parentID *kernel.UUID,
	guideHistory string,
	statusHistory string,
	notesHistory string,
) (*Package, error) {
	pkg := &Package{
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setGuideNumber(guideNumber),
		pkg.setName(name),
		pkg.setAddress(address),
		pkg.setCity(city),
		pkg.setProvince(province),
		pkg.setPhone(phone),
		pkg.setStatus(status),
	); err != nil {
		return nil, err
	}

	pkg.nroMaster = nroMaster
	pkg.agencyGuideNumber = agencyGuideNumber
	pkg.notes = notes
	pkg.hashtags = hashtags
	pkg.pullID = pullID
	pkg.transportAgencyID = transportAgencyID
	pkg.deliveryAgencyID = deliveryAgencyID
	pkg.parentID = parentID
	pkg.guideHistory = guideHistory
	pkg.statusHistory = statusHistory
	pkg.notesHistory = notesHistory
	return pkg, nil
}

// Validate ensures the Package was created through its constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// GuideNumber returns the package's own guide number.
func (p *Package) GuideNumber() string {
	return p.guideNumber
}

// NroMaster returns the master waybill number, possibly empty.
func (p *Package) NroMaster() string {
	return p.nroMaster
}

// AgencyGuideNumber returns the guide number assigned directly by a
// transport agency for individual shipments, possibly empty.
func (p *Package) AgencyGuideNumber() string {
	return p.agencyGuideNumber
}

// Name returns the recipient name.
func (p *Package) Name() string {
	return p.name
}

// Address returns the delivery address.
func (p *Package) Address() string {
	return p.address
}

// City returns the destination city.
func (p *Package) City() string {
	return p.city
}

// Province returns the destination province.
func (p *Package) Province() string {
	return p.province
}

// Phone returns the recipient phone number.
func (p *Package) Phone() string {
	return p.phone
}

// Status returns the package's current pipeline status.
func (p *Package) Status() Status {
	return p.status
}

// Notes returns the free-text notes, newest entry first.
func (p *Package) Notes() string {
	return p.notes
}

// PullID returns the containing pull's ID, or nil for a loose package.
func (p *Package) PullID() *kernel.UUID {
	return p.pullID
}

// TransportAgencyID returns the package's own transport-agency reference,
// or nil. For effective-agency resolution see the services package.
func (p *Package) TransportAgencyID() *kernel.UUID {
	return p.transportAgencyID
}

// DeliveryAgencyID returns the last-mile delivery agency reference, or nil.
func (p *Package) DeliveryAgencyID() *kernel.UUID {
	return p.deliveryAgencyID
}

// ParentID returns the hierarchy parent's ID, or nil for a root package.
func (p *Package) ParentID() *kernel.UUID {
	return p.parentID
}

// GuideHistory returns the guide-change audit log, newest entry first.
func (p *Package) GuideHistory() string {
	return p.guideHistory
}

// StatusHistory returns the status-change audit log, newest entry first.
func (p *Package) StatusHistory() string {
	return p.statusHistory
}

// NotesHistory returns the notes-change audit log, newest entry first.
func (p *Package) NotesHistory() string {
	return p.notesHistory
}

// SetNroMaster sets the master waybill number.
func (p *Package) SetNroMaster(nroMaster string) {
	p.nroMaster = nroMaster
}

// SetAgencyGuideNumber sets the agency-assigned guide number used for
// individual shipments.
func (p *Package) SetAgencyGuideNumber(agencyGuideNumber string) {
	p.agencyGuideNumber = agencyGuideNumber
}

// ChangeStatus moves the package to a new pipeline status and records the
// transition in the status history. Setting the current status again is a
// no-op (no duplicate history entry).
//
// Returns an error if the new status is invalid.
func (p *Package) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if newStatus == p.status {
		return nil
	}

	oldStatus := p.status
	p.status = newStatus
	p.statusHistory = historyEntry(fmt.Sprintf("%s → %s", oldStatus, newStatus)) + p.statusHistory
	return nil
}

// ChangeGuideNumber replaces the package's guide number and records the
// change in the guide history. Callers must verify the new number is not
// already in use; storage enforces uniqueness as the last line of defense.
//
// Returns an error if the new guide number is empty.
func (p *Package) ChangeGuideNumber(newGuideNumber string) error {
	if newGuideNumber == "" {
		return errs.NewValueIsRequiredError("guideNumber")
	}

	oldGuide := p.guideNumber
	p.guideNumber = newGuideNumber
	p.guideHistory = historyEntry(fmt.Sprintf("migrated from %s to %s", oldGuide, newGuideNumber)) + p.guideHistory
	return nil
}

// RecordGuideMigration notes in the guide history that the package was
// migrated to a new guide number carried by its migration parent. The
// package's own guide number does not change.
func (p *Package) RecordGuideMigration(newGuideNumber string) {
	p.guideHistory = historyEntry(fmt.Sprintf("migrated from %s to %s", p.guideNumber, newGuideNumber)) + p.guideHistory
}

// RecordMigrationOrigin stamps a freshly created migration parent with the
// guide it was migrated from, as its first guide-history entry.
func (p *Package) RecordMigrationOrigin(oldGuideNumber string) {
	p.guideHistory = historyEntry(fmt.Sprintf("created as migration of %s", oldGuideNumber)) + p.guideHistory
}

// AddNote prepends a timestamped note to the package's notes and records
// the change in the notes history.
func (p *Package) AddNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	p.notes = historyEntry(note) + p.notes
	p.notesHistory = historyEntry("notes updated: "+note) + p.notesHistory
	return nil
}

// CopyAuditTrail carries another package's histories and notes over, used
// when a migration parent inherits the original's audit data.
func (p *Package) CopyAuditTrail(from *Package) {
	p.notes = from.notes
	p.statusHistory = from.statusHistory
	p.notesHistory = from.notesHistory
}

// AssignToPull places the package inside a pull.
func (p *Package) AssignToPull(pullID kernel.UUID) error {
	if err := pullID.Validate(); err != nil {
		return err
	}
	p.pullID = &pullID
	return nil
}

// RemoveFromPull detaches the package from its pull, making it loose again.
func (p *Package) RemoveFromPull() {
	p.pullID = nil
}

// AssignTransportAgency sets the package's own transport agency, used for
// individual shipments outside any pull.
func (p *Package) AssignTransportAgency(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.transportAgencyID = &agencyID
	return nil
}

// UnassignTransportAgency clears the package's own transport agency.
func (p *Package) UnassignTransportAgency() {
	p.transportAgencyID = nil
}

// AssignDeliveryAgency sets the last-mile delivery agency.
func (p *Package) AssignDeliveryAgency(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.deliveryAgencyID = &agencyID
	return nil
}

// UnassignDeliveryAgency clears the last-mile delivery agency.
func (p *Package) UnassignDeliveryAgency() {
	p.deliveryAgencyID = nil
}

// SetParent links this package under a hierarchy parent. Callers must run
// the hierarchy guard's CanAddChild check first; this setter only rejects
// trivial self-parenting.
func (p *Package) SetParent(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(p.id) {
		return errs.NewValueIsInvalidError("a package cannot be its own parent")
	}
	p.parentID = &parentID
	return nil
}

// ClearParent detaches the package from its hierarchy parent.
func (p *Package) ClearParent() {
	p.parentID = nil
}

// Hashtags returns the raw space-separated hashtag string.
func (p *Package) Hashtags() string {
	return p.hashtags
}

// HashtagList returns the package's hashtags as a slice. Only tokens
// starting with '#' count; stray words in the stored string are ignored.
func (p *Package) HashtagList() []string {
	if p.hashtags == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Fields(p.hashtags) {
		if strings.HasPrefix(tag, "#") {
			tags = append(tags, tag)
		}
	}
	return tags
}

// AddHashtag adds a hashtag if not already present. The '#' prefix is
// added automatically when missing. Idempotent.
func (p *Package) AddHashtag(hashtag string) {
	if hashtag == "" {
		return
	}
	if !strings.HasPrefix(hashtag, "#") {
		hashtag = "#" + hashtag
	}

	tags := p.HashtagList()
	for _, tag := range tags {
		if tag == hashtag {
			return
		}
	}
	p.hashtags = strings.Join(append(tags, hashtag), " ")
}

// RemoveHashtag removes a hashtag if present. The '#' prefix is added
// automatically when missing. Idempotent.
func (p *Package) RemoveHashtag(hashtag string) {
	if hashtag == "" {
		return
	}
	if !strings.HasPrefix(hashtag, "#") {
		hashtag = "#" + hashtag
	}

	var kept []string
	for _, tag := range p.HashtagList() {
		if tag != hashtag {
			kept = append(kept, tag)
		}
	}
	p.hashtags = strings.Join(kept, " ")
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setGuideNumber(guideNumber string) error {
	if guideNumber == "" {
		return errs.NewValueIsRequiredError("guideNumber")
	}
	p.guideNumber = guideNumber
	return nil
}

func (p *Package) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Package) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

func (p *Package) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	p.city = city
	return nil
}

func (p *Package) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	p.province = province
	return nil
}

func (p *Package) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Package) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// historyEntry formats one audit line: "[2006-01-02 15:04:05] text\n".
// New entries are prepended so the newest change reads first.
func historyEntry(text string) string {
	return fmt.Sprintf("[%s] %s\n", time.Now().Format(historyTimeLayout), text)
}
