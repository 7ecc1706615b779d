package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackageShipmentQueryHandler loads a package's containment chain from
// the database and resolves its effective shipment attributes through the
// domain resolver. The chain is loaded once; resolution itself touches no
// storage.
type GetPackageShipmentQueryHandler struct {
	db       *gorm.DB
	resolver services.ShipmentResolver
}

// NewGetPackageShipmentQueryHandler creates a handler for package shipment
// views.
func NewGetPackageShipmentQueryHandler(db *gorm.DB) GetPackageShipmentQueryHandler {
	return GetPackageShipmentQueryHandler{
		db:       db,
		resolver: services.NewShipmentResolver(),
	}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the
// package does not exist.
func (h GetPackageShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetPackageShipmentQuery,
) (GetPackageShipmentQueryResponse, error) {
	var resp GetPackageShipmentQueryResponse

	if err := query.Validate(); err != nil {
		return resp, err
	}

	pkg, err := h.loadPackage(ctx, query.PackageID())
	if err != nil {
		return resp, err
	}

	var containingPull *pull.Pull
	var containingBatch *batch.Batch
	if pkg.PullID() != nil {
		containingPull, err = h.loadPull(ctx, *pkg.PullID())
		if err != nil {
			return resp, err
		}
		if containingPull.BatchID() != nil {
			containingBatch, err = h.loadBatch(ctx, *containingPull.BatchID())
			if err != nil {
				return resp, err
			}
		}
	}

	shipment, err := services.NewPackageShipment(pkg, containingPull, containingBatch)
	if err != nil {
		return resp, err
	}

	shipmentType := h.resolver.ShipmentType(shipment)

	resp.PackageID = pkg.ID()
	resp.GuideNumber = pkg.GuideNumber()
	resp.EffectiveDestiny = h.resolver.ShippingDestiny(shipment)
	resp.EffectiveAgencyID = h.resolver.ShippingAgency(shipment)
	resp.EffectiveGuide = h.resolver.ShippingGuideNumber(shipment)
	resp.DataSource = h.resolver.PackageDataSource(shipment)
	resp.ShipmentType = shipmentType.String()
	resp.ShipmentTypeName = shipmentType.DisplayName()
	for _, flag := range pkg.NoteFlags() {
		resp.NoteFlags = append(resp.NoteFlags, string(flag))
	}
	return resp, nil
}

func (h GetPackageShipmentQueryHandler) loadPackage(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			guide_number,
			nro_master,
			agency_guide_number,
			name,
			address,
			city,
			province,
			phone,
			status,
			notes,
			hashtags,
			pull_id,
			transport_agency_id,
			delivery_agency_id,
			parent_id,
			guide_history,
			status_history,
			notes_history
		FROM packages
		WHERE id = ?
	`, id.Bytes()).Row()

	var (
		rowID             uuid.UUID
		guideNumber       string
		nroMaster         string
		agencyGuideNumber string
		name              string
		address           string
		city              string
		province          string
		phone             string
		statusTag         string
		notes             string
		hashtags          string
		pullID            uuid.NullUUID
		transportAgencyID uuid.NullUUID
		deliveryAgencyID  uuid.NullUUID
		parentID          uuid.NullUUID
		guideHistory      string
		statusHistory     string
		notesHistory      string
	)

	err := row.Scan(
		&rowID,
		&guideNumber,
		&nroMaster,
		&agencyGuideNumber,
		&name,
		&address,
		&city,
		&province,
		&phone,
		&statusTag,
		&notes,
		&hashtags,
		&pullID,
		&transportAgencyID,
		&deliveryAgencyID,
		&parentID,
		&guideHistory,
		&statusHistory,
		&notesHistory,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("packageID", id)
	}
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(statusTag)
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(rowID[:])
	if err != nil {
		return nil, err
	}

	refs := make([]*kernel.UUID, 4)
	for i, v := range []uuid.NullUUID{pullID, transportAgencyID, deliveryAgencyID, parentID} {
		refs[i], err = nullableUUID(v)
		if err != nil {
			return nil, err
		}
	}

	return parcel.RestorePackage(
		packageID,
		guideNumber,
		nroMaster,
		agencyGuideNumber,
		name,
		address,
		city,
		province,
		phone,
		status,
		notes,
		hashtags,
		refs[0],
		refs[1],
		refs[2],
		refs[3],
		guideHistory,
		statusHistory,
		notesHistory,
	)
}

func (h GetPackageShipmentQueryHandler) loadPull(ctx context.Context, id kernel.UUID) (*pull.Pull, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			common_destiny,
			size,
			batch_id,
			transport_agency_id,
			guide_number,
			barcode_path
		FROM pulls
		WHERE id = ?
	`, id.Bytes()).Row()

	var (
		rowID             uuid.UUID
		commonDestiny     string
		sizeTag           string
		batchID           uuid.NullUUID
		transportAgencyID uuid.NullUUID
		guideNumber       string
		barcodePath       string
	)

	err := row.Scan(&rowID, &commonDestiny, &sizeTag, &batchID, &transportAgencyID, &guideNumber, &barcodePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("pullID", id)
	}
	if err != nil {
		return nil, err
	}

	size, err := pull.SizeFromString(sizeTag)
	if err != nil {
		return nil, err
	}

	pullKernelID, err := kernel.UUIDFromBytes(rowID[:])
	if err != nil {
		return nil, err
	}
	batchRef, err := nullableUUID(batchID)
	if err != nil {
		return nil, err
	}
	agencyRef, err := nullableUUID(transportAgencyID)
	if err != nil {
		return nil, err
	}

	return pull.RestorePull(
		pullKernelID,
		commonDestiny,
		size,
		batchRef,
		agencyRef,
		guideNumber,
		barcodePath,
	)
}

func (h GetPackageShipmentQueryHandler) loadBatch(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destiny,
			transport_agency_id,
			guide_number
		FROM batches
		WHERE id = ?
	`, id.Bytes()).Row()

	var (
		rowID             uuid.UUID
		destiny           string
		transportAgencyID uuid.NullUUID
		guideNumber       string
	)

	err := row.Scan(&rowID, &destiny, &transportAgencyID, &guideNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("batchID", id)
	}
	if err != nil {
		return nil, err
	}

	batchKernelID, err := kernel.UUIDFromBytes(rowID[:])
	if err != nil {
		return nil, err
	}
	agencyRef, err := nullableUUID(transportAgencyID)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		batchKernelID,
		destiny,
		agencyRef,
		guideNumber,
	)
}

func nullableUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
