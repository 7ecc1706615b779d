// Package http exposes the back-office operations over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"

	"github.com/labstack/echo/v4"
)

// dispatchDateLayout is the wire format of dispatch calendar dates.
const dispatchDateLayout = "2006-01-02"

// Server wires HTTP endpoints to command and query handlers.
type Server struct {
	// Command handlers
	createPackageHandler        commands.CreatePackageCommandHandler
	changePackageStatusHandler  commands.ChangePackageStatusCommandHandler
	addPackageNoteHandler       commands.AddPackageNoteCommandHandler
	migratePackageHandler       commands.MigratePackageCommandHandler
	createChildPackageHandler   commands.CreateChildPackageCommandHandler
	associateChildrenHandler    commands.AssociateChildrenCommandHandler
	createPullHandler           commands.CreatePullCommandHandler
	addPullToBatchHandler       commands.AddPullToBatchCommandHandler
	createBatchHandler          commands.CreateBatchCommandHandler
	autoDistributeHandler       commands.AutoDistributeCommandHandler
	createDispatchHandler       commands.CreateDispatchCommandHandler
	changeDispatchStatusHandler commands.ChangeDispatchStatusCommandHandler
	createLocationHandler       commands.CreateLocationCommandHandler
	createTransportAgency       commands.CreateTransportAgencyCommandHandler
	createDeliveryAgency        commands.CreateDeliveryAgencyCommandHandler

	// Query handlers
	getAvailablePackagesHandler queries.GetAvailablePackagesQueryHandler
	getPullStatisticsHandler    queries.GetPullStatisticsQueryHandler
	getDispatchSummaryHandler   queries.GetDispatchSummaryQueryHandler
	getPackageShipmentHandler   queries.GetPackageShipmentQueryHandler
}

// ServerHandlers groups the use-case handlers a Server needs.
type ServerHandlers struct {
	CreatePackage        commands.CreatePackageCommandHandler
	ChangePackageStatus  commands.ChangePackageStatusCommandHandler
	AddPackageNote       commands.AddPackageNoteCommandHandler
	MigratePackage       commands.MigratePackageCommandHandler
	CreateChildPackage   commands.CreateChildPackageCommandHandler
	AssociateChildren    commands.AssociateChildrenCommandHandler
	CreatePull           commands.CreatePullCommandHandler
	AddPullToBatch       commands.AddPullToBatchCommandHandler
	CreateBatch          commands.CreateBatchCommandHandler
	AutoDistribute       commands.AutoDistributeCommandHandler
	CreateDispatch       commands.CreateDispatchCommandHandler
	ChangeDispatchStatus commands.ChangeDispatchStatusCommandHandler
	CreateLocation       commands.CreateLocationCommandHandler
	CreateTransport      commands.CreateTransportAgencyCommandHandler
	CreateDelivery       commands.CreateDeliveryAgencyCommandHandler

	GetAvailablePackages queries.GetAvailablePackagesQueryHandler
	GetPullStatistics    queries.GetPullStatisticsQueryHandler
	GetDispatchSummary   queries.GetDispatchSummaryQueryHandler
	GetPackageShipment   queries.GetPackageShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createPackageHandler:        handlers.CreatePackage,
		changePackageStatusHandler:  handlers.ChangePackageStatus,
		addPackageNoteHandler:       handlers.AddPackageNote,
		migratePackageHandler:       handlers.MigratePackage,
		createChildPackageHandler:   handlers.CreateChildPackage,
		associateChildrenHandler:    handlers.AssociateChildren,
		createPullHandler:           handlers.CreatePull,
		addPullToBatchHandler:       handlers.AddPullToBatch,
		createBatchHandler:          handlers.CreateBatch,
		autoDistributeHandler:       handlers.AutoDistribute,
		createDispatchHandler:       handlers.CreateDispatch,
		changeDispatchStatusHandler: handlers.ChangeDispatchStatus,
		createLocationHandler:       handlers.CreateLocation,
		createTransportAgency:       handlers.CreateTransport,
		createDeliveryAgency:        handlers.CreateDelivery,
		getAvailablePackagesHandler: handlers.GetAvailablePackages,
		getPullStatisticsHandler:    handlers.GetPullStatistics,
		getDispatchSummaryHandler:   handlers.GetDispatchSummary,
		getPackageShipmentHandler:   handlers.GetPackageShipment,
	}
}

// RegisterRoutes binds all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/available", s.GetAvailablePackages)
	api.POST("/packages/:id/status", s.ChangePackageStatus)
	api.POST("/packages/:id/notes", s.AddPackageNote)
	api.POST("/packages/:id/migrate", s.MigratePackage)
	api.POST("/packages/:id/children", s.CreateChildPackage)
	api.POST("/packages/:id/children/associate", s.AssociateChildren)
	api.GET("/packages/:id/shipment", s.GetPackageShipment)

	api.POST("/pulls", s.CreatePull)
	api.GET("/pulls/:id/statistics", s.GetPullStatistics)

	api.POST("/batches", s.CreateBatch)
	api.POST("/batches/:id/pulls", s.AttachPull)
	api.POST("/batches/auto-distribute", s.AutoDistribute)

	api.POST("/dispatches", s.CreateDispatch)
	api.GET("/dispatches/summary", s.GetDispatchSummary)
	api.POST("/dispatches/:id/status", s.ChangeDispatchStatus)

	api.POST("/locations", s.CreateLocation)
	api.POST("/transport-agencies", s.CreateTransportAgency)
	api.POST("/delivery-agencies", s.CreateDeliveryAgency)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreatePackage handles POST /api/v1/packages - registers a new package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req CreatePackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	options, err := buildPackageOptions(req.Options)
	if err != nil {
		return badRequest(ctx, "Invalid package options: "+err.Error())
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(
		packageID,
		req.GuideNumber,
		req.Name,
		req.Address,
		req.City,
		req.Province,
		req.Phone,
		options,
	)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	if handleErr := s.createPackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: packageID.String()})
}

// ChangePackageStatus handles POST /api/v1/packages/:id/status.
func (s *Server) ChangePackageStatus(ctx echo.Context) error {
	packageID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req ChangePackageStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown package status: "+req.Status)
	}

	cmd, err := commands.NewChangePackageStatusCommand(packageID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changePackageStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPackageNote handles POST /api/v1/packages/:id/notes.
func (s *Server) AddPackageNote(ctx echo.Context) error {
	packageID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req AddPackageNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddPackageNoteCommand(packageID, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid note: "+err.Error())
	}

	if handleErr := s.addPackageNoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MigratePackage handles POST /api/v1/packages/:id/migrate - reissues a
// package under a new guide number, keeping the old one as a child record.
func (s *Server) MigratePackage(ctx echo.Context) error {
	packageID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req MigratePackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newPackageID := kernel.NewUUID()
	cmd, err := commands.NewMigratePackageCommand(packageID, newPackageID, req.NewGuideNumber)
	if err != nil {
		return badRequest(ctx, "Invalid migration: "+err.Error())
	}

	if handleErr := s.migratePackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: newPackageID.String()})
}

// CreateChildPackage handles POST /api/v1/packages/:id/children.
func (s *Server) CreateChildPackage(ctx echo.Context) error {
	parentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req CreateChildPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	options, err := buildPackageOptions(req.Options)
	if err != nil {
		return badRequest(ctx, "Invalid package options: "+err.Error())
	}

	childID := kernel.NewUUID()
	cmd, err := commands.NewCreateChildPackageCommand(
		parentID,
		childID,
		req.GuideNumber,
		req.Name,
		req.Address,
		req.City,
		req.Province,
		req.Phone,
		options,
	)
	if err != nil {
		return badRequest(ctx, "Invalid child package data: "+err.Error())
	}

	if handleErr := s.createChildPackageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: childID.String()})
}

// AssociateChildren handles POST /api/v1/packages/:id/children/associate.
// Failures are reported per child; the request fails as a whole only when
// no child could be linked.
func (s *Server) AssociateChildren(ctx echo.Context) error {
	parentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req AssociateChildrenRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	childIDs, err := parseUUIDs(req.ChildIDs)
	if err != nil {
		return badRequest(ctx, "Invalid child id: "+err.Error())
	}

	cmd, err := commands.NewAssociateChildrenCommand(parentID, childIDs)
	if err != nil {
		return badRequest(ctx, "Invalid association: "+err.Error())
	}

	result, handleErr := s.associateChildrenHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoChildrenAssociated) {
			return ctx.JSON(http.StatusBadRequest, associationResponse(result))
		}
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, associationResponse(result))
}

// GetAvailablePackages handles GET /api/v1/packages/available.
func (s *Server) GetAvailablePackages(ctx echo.Context) error {
	query := queries.NewGetAvailablePackagesQuery()

	rows, err := s.getAvailablePackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AvailablePackageResponse, len(rows))
	for i, row := range rows {
		response[i] = AvailablePackageResponse{
			ID:          row.ID.String(),
			GuideNumber: row.GuideNumber,
			Name:        row.Name,
			City:        row.City,
			Province:    row.Province,
			Status:      row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPackageShipment handles GET /api/v1/packages/:id/shipment - resolves
// the effective shipment attributes through the containment chain.
func (s *Server) GetPackageShipment(ctx echo.Context) error {
	packageID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	query, err := queries.NewGetPackageShipmentQuery(packageID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	shipment, err := s.getPackageShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := PackageShipmentResponse{
		PackageID:        shipment.PackageID.String(),
		GuideNumber:      shipment.GuideNumber,
		EffectiveDestiny: shipment.EffectiveDestiny,
		EffectiveGuide:   shipment.EffectiveGuide,
		DataSource: ShipmentDataSourceResponse{
			Destiny: string(shipment.DataSource.Destiny),
			Agency:  string(shipment.DataSource.Agency),
			Guide:   string(shipment.DataSource.Guide),
		},
		ShipmentType:     shipment.ShipmentType,
		ShipmentTypeName: shipment.ShipmentTypeName,
		NoteFlags:        shipment.NoteFlags,
	}
	if shipment.EffectiveAgencyID != nil {
		response.EffectiveAgencyID = shipment.EffectiveAgencyID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePull handles POST /api/v1/pulls - creates a sack and optionally
// fills it with loose packages.
func (s *Server) CreatePull(ctx echo.Context) error {
	var req CreatePullRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	size, err := pull.SizeFromString(req.Size)
	if err != nil {
		return badRequest(ctx, "Unknown sack size: "+req.Size)
	}

	packageIDs, err := parseUUIDs(req.PackageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid package id: "+err.Error())
	}

	pullID := kernel.NewUUID()
	cmd, err := commands.NewCreatePullCommand(pullID, req.CommonDestiny, size, packageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid pull data: "+err.Error())
	}

	if handleErr := s.createPullHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: pullID.String()})
}

// GetPullStatistics handles GET /api/v1/pulls/:id/statistics.
func (s *Server) GetPullStatistics(ctx echo.Context) error {
	pullID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid pull id")
	}

	query, err := queries.NewGetPullStatisticsQuery(pullID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getPullStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PullStatisticsResponse{
		PullID:        stats.PullID.String(),
		TotalPackages: stats.TotalPackages,
		StatusCounts:  stats.StatusCounts,
	})
}

// CreateBatch handles POST /api/v1/batches - creates a lot with its sacks
// and their contents in one transaction.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var req CreateBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agencyID, err := optionalUUID(req.TransportAgencyID)
	if err != nil {
		return badRequest(ctx, "Invalid transport agency id")
	}

	pullSpecs := make([]commands.BatchPullSpec, 0, len(req.Pulls))
	for _, spec := range req.Pulls {
		size, sizeErr := pull.SizeFromString(spec.Size)
		if sizeErr != nil {
			return badRequest(ctx, "Unknown sack size: "+spec.Size)
		}

		packageIDs, idErr := parseUUIDs(spec.PackageIDs)
		if idErr != nil {
			return badRequest(ctx, "Invalid package id: "+idErr.Error())
		}

		pullSpecs = append(pullSpecs, commands.BatchPullSpec{
			PullID:     kernel.NewUUID(),
			Size:       size,
			PackageIDs: packageIDs,
		})
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(batchID, req.Destiny, agencyID, req.GuideNumber, pullSpecs)
	if err != nil {
		return badRequest(ctx, "Invalid batch data: "+err.Error())
	}

	if handleErr := s.createBatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: batchID.String()})
}

// AttachPull handles POST /api/v1/batches/:id/pulls - places an existing
// sack inside a batch.
func (s *Server) AttachPull(ctx echo.Context) error {
	batchID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var req AttachPullRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pullID, err := kernel.UUIDFromString(req.PullID)
	if err != nil {
		return badRequest(ctx, "Invalid pull id")
	}

	cmd, err := commands.NewAddPullToBatchCommand(pullID, batchID)
	if err != nil {
		return badRequest(ctx, "Invalid attachment: "+err.Error())
	}

	if handleErr := s.addPullToBatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AutoDistribute handles POST /api/v1/batches/auto-distribute - creates a
// batch and spreads the listed packages across the requested sacks.
func (s *Server) AutoDistribute(ctx echo.Context) error {
	var req AutoDistributeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agencyID, err := optionalUUID(req.TransportAgencyID)
	if err != nil {
		return badRequest(ctx, "Invalid transport agency id")
	}

	packageIDs, err := parseUUIDs(req.PackageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid package id: "+err.Error())
	}

	buckets := make([]commands.DistributionBucket, 0, len(req.Buckets))
	for _, bucket := range req.Buckets {
		size, sizeErr := pull.SizeFromString(bucket.Size)
		if sizeErr != nil {
			return badRequest(ctx, "Unknown sack size: "+bucket.Size)
		}

		buckets = append(buckets, commands.DistributionBucket{
			PullID:      kernel.NewUUID(),
			Size:        size,
			MaxPackages: bucket.MaxPackages,
		})
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewAutoDistributeCommand(
		batchID,
		req.Destiny,
		agencyID,
		req.GuideNumber,
		packageIDs,
		buckets,
	)
	if err != nil {
		return badRequest(ctx, "Invalid distribution: "+err.Error())
	}

	if handleErr := s.autoDistributeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: batchID.String()})
}

// CreateDispatch handles POST /api/v1/dispatches.
func (s *Server) CreateDispatch(ctx echo.Context) error {
	var req CreateDispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := time.Parse(dispatchDateLayout, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch date, expected YYYY-MM-DD")
	}

	pullIDs, err := parseUUIDs(req.PullIDs)
	if err != nil {
		return badRequest(ctx, "Invalid pull id: "+err.Error())
	}

	packageIDs, err := parseUUIDs(req.PackageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid package id: "+err.Error())
	}

	dispatchID := kernel.NewUUID()
	cmd, err := commands.NewCreateDispatchCommand(dispatchID, date, req.Notes, pullIDs, packageIDs)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch data: "+err.Error())
	}

	if handleErr := s.createDispatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: dispatchID.String()})
}

// ChangeDispatchStatus handles POST /api/v1/dispatches/:id/status.
func (s *Server) ChangeDispatchStatus(ctx echo.Context) error {
	dispatchID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch id")
	}

	var req ChangeDispatchStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := dispatch.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown dispatch status: "+req.Status)
	}

	cmd, err := commands.NewChangeDispatchStatusCommand(dispatchID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeDispatchStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDispatchSummary handles GET /api/v1/dispatches/summary?date=YYYY-MM-DD.
func (s *Server) GetDispatchSummary(ctx echo.Context) error {
	date, err := time.Parse(dispatchDateLayout, ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	query, err := queries.NewGetDispatchSummaryQuery(date)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getDispatchSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchSummaryResponse{
		Date:           summary.Date.Format(dispatchDateLayout),
		Dispatches:     summary.Dispatches,
		Pulls:          summary.Pulls,
		SackedPackages: summary.SackedPackages,
		LoosePackages:  summary.LoosePackages,
		TotalPackages:  summary.TotalPackages,
	})
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var req CreateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(locationID, req.City, req.Province)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.createLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: locationID.String()})
}

// CreateTransportAgency handles POST /api/v1/transport-agencies.
func (s *Server) CreateTransportAgency(ctx echo.Context) error {
	var req CreateTransportAgencyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportAgencyCommand(
		agencyID,
		req.Name,
		req.Phone,
		req.Email,
		req.Address,
		req.ContactPerson,
	)
	if err != nil {
		return badRequest(ctx, "Invalid agency data: "+err.Error())
	}

	if handleErr := s.createTransportAgency.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: agencyID.String()})
}

// CreateDeliveryAgency handles POST /api/v1/delivery-agencies.
func (s *Server) CreateDeliveryAgency(ctx echo.Context) error {
	var req CreateDeliveryAgencyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return badRequest(ctx, "Invalid location id")
	}

	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryAgencyCommand(
		agencyID,
		req.Name,
		locationID,
		req.Address,
		req.Phone,
		req.ContactPerson,
	)
	if err != nil {
		return badRequest(ctx, "Invalid agency data: "+err.Error())
	}

	if handleErr := s.createDeliveryAgency.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: agencyID.String()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func domainError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func optionalUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func buildPackageOptions(req PackageOptionsRequest) (commands.CreatePackageOptions, error) {
	transportAgencyID, err := optionalUUID(req.TransportAgencyID)
	if err != nil {
		return commands.CreatePackageOptions{}, err
	}

	deliveryAgencyID, err := optionalUUID(req.DeliveryAgencyID)
	if err != nil {
		return commands.CreatePackageOptions{}, err
	}

	return commands.CreatePackageOptions{
		NroMaster:         req.NroMaster,
		AgencyGuideNumber: req.AgencyGuideNumber,
		Notes:             req.Notes,
		Hashtags:          req.Hashtags,
		TransportAgencyID: transportAgencyID,
		DeliveryAgencyID:  deliveryAgencyID,
	}, nil
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func associationResponse(result commands.AssociateChildrenResult) AssociateChildrenResponse {
	response := AssociateChildrenResponse{
		Associated: make([]ChildAssociationResponse, 0, len(result.Associated)),
		Failed:     make([]ChildAssociationResponse, 0, len(result.Failed)),
	}

	for _, item := range result.Associated {
		response.Associated = append(response.Associated, ChildAssociationResponse{
			ChildID:     item.ChildID.String(),
			GuideNumber: item.GuideNumber,
		})
	}

	for _, item := range result.Failed {
		failed := ChildAssociationResponse{
			ChildID:     item.ChildID.String(),
			GuideNumber: item.GuideNumber,
		}
		if item.Err != nil {
			failed.Error = item.Err.Error()
		}
		response.Failed = append(response.Failed, failed)
	}

	return response
}
