package http

import (
	"errors"
	"net/http"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PackageOptionsRequest carries the optional fields of package creation.
type PackageOptionsRequest struct {
	NroMaster         string   `json:"nroMaster,omitempty"`
	AgencyGuideNumber string   `json:"agencyGuideNumber,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Hashtags          []string `json:"hashtags,omitempty"`
	TransportAgencyID string   `json:"transportAgencyId,omitempty"`
	DeliveryAgencyID  string   `json:"deliveryAgencyId,omitempty"`
}

// CreatePackageRequest is the body of POST /api/v1/packages.
type CreatePackageRequest struct {
	GuideNumber string                `json:"guideNumber"`
	Name        string                `json:"name"`
	Address     string                `json:"address"`
	City        string                `json:"city"`
	Province    string                `json:"province"`
	Phone       string                `json:"phone"`
	Options     PackageOptionsRequest `json:"options"`
}

// CreateChildPackageRequest is the body of POST /api/v1/packages/:id/children.
// An empty guide number asks the server to derive one from the parent.
type CreateChildPackageRequest struct {
	GuideNumber string                `json:"guideNumber,omitempty"`
	Name        string                `json:"name"`
	Address     string                `json:"address"`
	City        string                `json:"city"`
	Province    string                `json:"province"`
	Phone       string                `json:"phone"`
	Options     PackageOptionsRequest `json:"options"`
}

// ChangePackageStatusRequest is the body of POST /api/v1/packages/:id/status.
type ChangePackageStatusRequest struct {
	Status string `json:"status"`
}

// AddPackageNoteRequest is the body of POST /api/v1/packages/:id/notes.
type AddPackageNoteRequest struct {
	Note string `json:"note"`
}

// MigratePackageRequest is the body of POST /api/v1/packages/:id/migrate.
type MigratePackageRequest struct {
	NewGuideNumber string `json:"newGuideNumber"`
}

// AssociateChildrenRequest is the body of
// POST /api/v1/packages/:id/children/associate.
type AssociateChildrenRequest struct {
	ChildIDs []string `json:"childIds"`
}

// ChildAssociationResponse is one item of an association outcome.
type ChildAssociationResponse struct {
	ChildID     string `json:"childId"`
	GuideNumber string `json:"guideNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// AssociateChildrenResponse reports per-child association outcomes.
type AssociateChildrenResponse struct {
	Associated []ChildAssociationResponse `json:"associated"`
	Failed     []ChildAssociationResponse `json:"failed"`
}

// CreatePullRequest is the body of POST /api/v1/pulls.
type CreatePullRequest struct {
	CommonDestiny string   `json:"commonDestiny"`
	Size          string   `json:"size"`
	PackageIDs    []string `json:"packageIds,omitempty"`
}

// AttachPullRequest is the body of POST /api/v1/batches/:id/pulls.
type AttachPullRequest struct {
	PullID string `json:"pullId"`
}

// BatchPullSpecRequest describes one sack of a batch creation request.
type BatchPullSpecRequest struct {
	Size       string   `json:"size"`
	PackageIDs []string `json:"packageIds,omitempty"`
}

// CreateBatchRequest is the body of POST /api/v1/batches.
type CreateBatchRequest struct {
	Destiny           string                 `json:"destiny"`
	TransportAgencyID string                 `json:"transportAgencyId,omitempty"`
	GuideNumber       string                 `json:"guideNumber,omitempty"`
	Pulls             []BatchPullSpecRequest `json:"pulls,omitempty"`
}

// DistributionBucketRequest describes one target sack of an
// auto-distribution request.
type DistributionBucketRequest struct {
	Size        string `json:"size"`
	MaxPackages int    `json:"maxPackages"`
}

// AutoDistributeRequest is the body of POST /api/v1/batches/auto-distribute.
type AutoDistributeRequest struct {
	Destiny           string                      `json:"destiny"`
	TransportAgencyID string                      `json:"transportAgencyId,omitempty"`
	GuideNumber       string                      `json:"guideNumber,omitempty"`
	PackageIDs        []string                    `json:"packageIds"`
	Buckets           []DistributionBucketRequest `json:"buckets"`
}

// CreateDispatchRequest is the body of POST /api/v1/dispatches.
type CreateDispatchRequest struct {
	Date       string   `json:"date"`
	Notes      string   `json:"notes,omitempty"`
	PullIDs    []string `json:"pullIds,omitempty"`
	PackageIDs []string `json:"packageIds,omitempty"`
}

// ChangeDispatchStatusRequest is the body of POST /api/v1/dispatches/:id/status.
type ChangeDispatchStatusRequest struct {
	Status string `json:"status"`
}

// CreateLocationRequest is the body of POST /api/v1/locations.
type CreateLocationRequest struct {
	City     string `json:"city"`
	Province string `json:"province"`
}

// CreateTransportAgencyRequest is the body of POST /api/v1/transport-agencies.
type CreateTransportAgencyRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

// CreateDeliveryAgencyRequest is the body of POST /api/v1/delivery-agencies.
type CreateDeliveryAgencyRequest struct {
	Name          string `json:"name"`
	LocationID    string `json:"locationId"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

// CreatedResponse returns the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AvailablePackageResponse is one row of GET /api/v1/packages/available.
type AvailablePackageResponse struct {
	ID          string `json:"id"`
	GuideNumber string `json:"guideNumber"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Status      string `json:"status"`
}

// PullStatisticsResponse is the body of GET /api/v1/pulls/:id/statistics.
type PullStatisticsResponse struct {
	PullID        string         `json:"pullId"`
	TotalPackages int            `json:"totalPackages"`
	StatusCounts  map[string]int `json:"statusCounts"`
}

// DispatchSummaryResponse is the body of GET /api/v1/dispatches/summary.
type DispatchSummaryResponse struct {
	Date           string `json:"date"`
	Dispatches     int    `json:"dispatches"`
	Pulls          int    `json:"pulls"`
	SackedPackages int    `json:"sackedPackages"`
	LoosePackages  int    `json:"loosePackages"`
	TotalPackages  int    `json:"totalPackages"`
}

// ShipmentDataSourceResponse reports per-attribute provenance.
type ShipmentDataSourceResponse struct {
	Destiny string `json:"destiny"`
	Agency  string `json:"agency"`
	Guide   string `json:"guide"`
}

// PackageShipmentResponse is the body of GET /api/v1/packages/:id/shipment.
type PackageShipmentResponse struct {
	PackageID         string                     `json:"packageId"`
	GuideNumber       string                     `json:"guideNumber"`
	EffectiveDestiny  string                     `json:"effectiveDestiny"`
	EffectiveAgencyID string                     `json:"effectiveAgencyId,omitempty"`
	EffectiveGuide    string                     `json:"effectiveGuide,omitempty"`
	DataSource        ShipmentDataSourceResponse `json:"dataSource"`
	ShipmentType      string                     `json:"shipmentType"`
	ShipmentTypeName  string                     `json:"shipmentTypeName"`
	NoteFlags         []string                   `json:"noteFlags,omitempty"`
}

// statusCodeFor maps domain errors onto HTTP status codes. Validation
// failures are the caller's fault, conflicts reflect business rules, and
// everything else is a server error.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, parcel.ErrDuplicateGuideNumber),
		errors.Is(err, parcel.ErrMigrationBlocked),
		errors.Is(err, pull.ErrDestinationMismatch),
		errors.Is(err, services.ErrInvalidHierarchy),
		errors.Is(err, services.ErrSuspectedCycle),
		errors.Is(err, services.ErrInsufficientCapacity):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
