// Package http exposes the order board over a REST API: order and flow-error
// reads, manual moves, and the mapping table and mode configuration surfaces.
package http

import (
	"net/http"

	"flowtrack/internal/core/application/usecases/commands"
	"flowtrack/internal/core/application/usecases/queries"
	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/statusmap"
	"flowtrack/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	ingestOrdersHandler       commands.IngestOrdersCommandHandler
	moveOrderHandler          commands.MoveOrderCommandHandler
	saveStatusMappingsHandler commands.SaveStatusMappingsCommandHandler
	setAreaModesHandler       commands.SetAreaModesCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getMoveAuditHandler      queries.GetMoveAuditQueryHandler
	getAreaModesHandler      queries.GetAreaModesQueryHandler
	getStatusMappingsHandler queries.GetStatusMappingsQueryHandler
	getFlowErrorsHandler     queries.GetFlowErrorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	ingestOrdersHandler commands.IngestOrdersCommandHandler,
	moveOrderHandler commands.MoveOrderCommandHandler,
	saveStatusMappingsHandler commands.SaveStatusMappingsCommandHandler,
	setAreaModesHandler commands.SetAreaModesCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getMoveAuditHandler queries.GetMoveAuditQueryHandler,
	getAreaModesHandler queries.GetAreaModesQueryHandler,
	getStatusMappingsHandler queries.GetStatusMappingsQueryHandler,
	getFlowErrorsHandler queries.GetFlowErrorsQueryHandler,
) *Server {
	return &Server{
		ingestOrdersHandler:       ingestOrdersHandler,
		moveOrderHandler:          moveOrderHandler,
		saveStatusMappingsHandler: saveStatusMappingsHandler,
		setAreaModesHandler:       setAreaModesHandler,
		getOrdersHandler:          getOrdersHandler,
		getMoveAuditHandler:       getMoveAuditHandler,
		getAreaModesHandler:       getAreaModesHandler,
		getStatusMappingsHandler:  getStatusMappingsHandler,
		getFlowErrorsHandler:      getFlowErrorsHandler,
	}
}

// RegisterRoutes mounts the API and installs the request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/ingest", s.IngestOrders)
	api.POST("/orders/:id/move", s.MoveOrder)
	api.GET("/orders/:id/audit", s.GetMoveAudit)
	api.GET("/flow-errors", s.GetFlowErrors)
	api.GET("/area-modes", s.GetAreaModes)
	api.PUT("/area-modes", s.SetAreaModes)
	api.GET("/status-mappings", s.GetStatusMappings)
	api.PUT("/status-mappings", s.SaveStatusMappings)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - retrieves the order board, optionally
// filtered with ?area=<name>.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if areaName := ctx.QueryParam("area"); areaName != "" {
		area, err := kernel.AreaFromString(areaName)
		if err != nil {
			return writeBadRequest(ctx, "unknown area: "+areaName)
		}
		query = query.InArea(area)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:                o.ID.String(),
			Number:            o.Number,
			Plant:             o.Plant,
			Material:          o.Material,
			StartDate:         o.StartDate,
			FinishDate:        o.FinishDate,
			OrderQuantity:     o.OrderQuantity,
			DeliveredQuantity: o.DeliveredQuantity,
			RawStatus:         o.RawStatus,
			CurrentArea:       o.CurrentArea.String(),
			SapArea:           o.SapArea.String(),
			Source:            o.Source.String(),
			Discrepancy:       o.Discrepancy,
			HasChanges:        o.HasChanges,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// IngestOrders handles POST /api/v1/orders/ingest - upserts one upstream
// snapshot batch.
func (s *Server) IngestOrders(ctx echo.Context) error {
	var request IngestOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return writeBadRequest(ctx, "invalid ingest payload: "+err.Error())
	}

	records := make([]commands.OrderIngestRecord, len(request.Records))
	for i, row := range request.Records {
		records[i] = commands.OrderIngestRecord{
			Number:            row.Number,
			Plant:             row.Plant,
			Material:          row.Material,
			StartDate:         row.StartDate,
			FinishDate:        row.FinishDate,
			OrderQuantity:     row.OrderQuantity,
			DeliveredQuantity: row.DeliveredQuantity,
			RawStatus:         row.RawStatus,
			ChangedFields:     row.ChangedFields,
		}
	}

	cmd, err := commands.NewIngestOrdersCommand(records)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.ingestOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MoveOrder handles POST /api/v1/orders/:id/move - performs a manual move.
func (s *Server) MoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var request MoveOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return writeBadRequest(ctx, "invalid move payload: "+err.Error())
	}

	targetArea, err := kernel.AreaFromString(request.TargetArea)
	if err != nil {
		return writeBadRequest(ctx, "unknown area: "+request.TargetArea)
	}

	cmd, err := commands.NewMoveOrderCommand(orderID, targetArea, request.Justification, request.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	moved, err := s.moveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MoveOrderResponse{
		OrderID:      moved.OrderID.String(),
		PreviousArea: moved.PreviousArea.String(),
		CurrentArea:  moved.CurrentArea.String(),
		Source:       moved.Source.String(),
		MovedAt:      moved.MovedAt,
		MovedBy:      moved.MovedBy,
	})
}

// GetMoveAudit handles GET /api/v1/orders/:id/audit - retrieves an order's
// move history, newest first.
func (s *Server) GetMoveAudit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetMoveAuditQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getMoveAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MoveAuditEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = MoveAuditEntryResponse{
			ID:            entry.ID.String(),
			OrderID:       entry.OrderID.String(),
			FromArea:      entry.FromArea.String(),
			ToArea:        entry.ToArea.String(),
			Justification: entry.Justification,
			MovedAt:       entry.MovedAt,
			Actor:         entry.Actor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFlowErrors handles GET /api/v1/flow-errors - recomputes the categorized
// findings, optionally filtered with ?category=<name>.
func (s *Server) GetFlowErrors(ctx echo.Context) error {
	query := queries.NewGetFlowErrorsQuery()

	if categoryName := ctx.QueryParam("category"); categoryName != "" {
		category, ok := flowErrorCategoryFromString(categoryName)
		if !ok {
			return writeBadRequest(ctx, "unknown category: "+categoryName)
		}
		query = query.InCategory(category)
	}

	findings, err := s.getFlowErrorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]FlowErrorResponse, len(findings))
	for i, finding := range findings {
		response[i] = FlowErrorResponse{
			Category:    string(finding.Category),
			OrderID:     finding.OrderID.String(),
			OrderNumber: finding.OrderNumber,
			Description: finding.Description,
		}
		if finding.Category == services.CategoryDiscrepancy {
			response[i].CurrentArea = finding.CurrentArea.String()
			response[i].SapArea = finding.SapArea.String()
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAreaModes handles GET /api/v1/area-modes.
func (s *Server) GetAreaModes(ctx echo.Context) error {
	modes, err := s.getAreaModesHandler.Handle(ctx.Request().Context(), queries.NewGetAreaModesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AreaModesResponse{
		Warehouse:  modes.Modes.ModeOf(kernel.AreaWarehouse).String(),
		Production: modes.Modes.ModeOf(kernel.AreaProduction).String(),
		Logistics:  modes.Modes.ModeOf(kernel.AreaLogistics).String(),
	})
}

// SetAreaModes handles PUT /api/v1/area-modes - replaces the mode configuration.
func (s *Server) SetAreaModes(ctx echo.Context) error {
	var request AreaModesRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return writeBadRequest(ctx, "invalid mode payload: "+err.Error())
	}

	modeSet, err := modeSetFromRequest(request)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetAreaModesCommand(modeSet)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setAreaModesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStatusMappings handles GET /api/v1/status-mappings.
func (s *Server) GetStatusMappings(ctx echo.Context) error {
	mappings, err := s.getStatusMappingsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetStatusMappingsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusMappingRow, len(mappings))
	for i, mapping := range mappings {
		response[i] = StatusMappingRow{
			StatusValue: mapping.StatusValue,
			Area:        mapping.Area.String(),
			Label:       mapping.Label,
			SortOrder:   mapping.SortOrder,
			IsActive:    mapping.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SaveStatusMappings handles PUT /api/v1/status-mappings - replaces the table
// and reassigns every system-tracked order against it.
func (s *Server) SaveStatusMappings(ctx echo.Context) error {
	var request StatusMappingsRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return writeBadRequest(ctx, "invalid mapping payload: "+err.Error())
	}

	mappings := make([]statusmap.StatusMapping, len(request.Mappings))
	for i, row := range request.Mappings {
		area, err := kernel.AreaFromString(row.Area)
		if err != nil {
			return writeBadRequest(ctx, "unknown area: "+row.Area)
		}

		mapping, err := statusmap.NewStatusMapping(row.StatusValue, area, row.Label, row.SortOrder, row.IsActive)
		if err != nil {
			return writeError(ctx, err)
		}
		mappings[i] = mapping
	}

	cmd, err := commands.NewSaveStatusMappingsCommand(mappings)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.saveStatusMappingsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// modeSetFromRequest builds the domain mode set from the request body. The
// validator already constrained every mode name to AUTO or MANUAL.
func modeSetFromRequest(request AreaModesRequest) (areamode.ModeSet, error) {
	modes := make(map[kernel.Area]areamode.Mode, 3)

	for area, name := range map[kernel.Area]string{
		kernel.AreaWarehouse:  request.Warehouse,
		kernel.AreaProduction: request.Production,
		kernel.AreaLogistics:  request.Logistics,
	} {
		mode, err := areamode.ModeFromString(name)
		if err != nil {
			return areamode.ModeSet{}, err
		}
		modes[area] = mode
	}

	return areamode.NewModeSet(modes)
}

// flowErrorCategoryFromString resolves a category query parameter.
func flowErrorCategoryFromString(s string) (services.FlowErrorCategory, bool) {
	switch services.FlowErrorCategory(s) {
	case services.CategoryDiscrepancy,
		services.CategoryRegress,
		services.CategoryMissing,
		services.CategoryInvalid:
		return services.FlowErrorCategory(s), true
	default:
		return "", false
	}
}
