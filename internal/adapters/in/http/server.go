// Package http exposes the engine over a JSON API. Handlers translate
// transport concerns (binding, validation, status codes, CSV encoding) and
// delegate every decision to the command and query handlers.
package http

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"dockflow/internal/core/application/usecases/commands"
	"dockflow/internal/core/application/usecases/queries"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	enqueueHandler  commands.EnqueueLoadingCommandHandler
	approveHandler  commands.ApproveLoadingCommandHandler
	revertHandler   commands.RevertLoadingCommandHandler
	startHandler    commands.StartLoadingCommandHandler
	pauseHandler    commands.PauseLoadingCommandHandler
	completeHandler commands.CompleteLoadingCommandHandler
	cancelHandler   commands.CancelLoadingCommandHandler
	scanHandler     commands.ScanProductCommandHandler
	archiveHandler  commands.ArchiveCompletedCommandHandler
	releaseHandler  commands.ReleaseAllDocksCommandHandler
	resetHandler    commands.ResetEngineCommandHandler

	// Query handlers
	listHandler      queries.ListLoadingsQueryHandler
	checklistHandler queries.GetChecklistQueryHandler
	dockBoardHandler queries.GetDockBoardQueryHandler
	statsHandler     queries.GetStatsQueryHandler
	exportHandler    queries.ExportDayQueryHandler
}

// Handlers bundles every use case the server exposes.
type Handlers struct {
	Enqueue  commands.EnqueueLoadingCommandHandler
	Approve  commands.ApproveLoadingCommandHandler
	Revert   commands.RevertLoadingCommandHandler
	Start    commands.StartLoadingCommandHandler
	Pause    commands.PauseLoadingCommandHandler
	Complete commands.CompleteLoadingCommandHandler
	Cancel   commands.CancelLoadingCommandHandler
	Scan     commands.ScanProductCommandHandler
	Archive  commands.ArchiveCompletedCommandHandler
	Release  commands.ReleaseAllDocksCommandHandler
	Reset    commands.ResetEngineCommandHandler

	List      queries.ListLoadingsQueryHandler
	Checklist queries.GetChecklistQueryHandler
	DockBoard queries.GetDockBoardQueryHandler
	Stats     queries.GetStatsQueryHandler
	Export    queries.ExportDayQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		enqueueHandler:   h.Enqueue,
		approveHandler:   h.Approve,
		revertHandler:    h.Revert,
		startHandler:     h.Start,
		pauseHandler:     h.Pause,
		completeHandler:  h.Complete,
		cancelHandler:    h.Cancel,
		scanHandler:      h.Scan,
		archiveHandler:   h.Archive,
		releaseHandler:   h.Release,
		resetHandler:     h.Reset,
		listHandler:      h.List,
		checklistHandler: h.Checklist,
		dockBoardHandler: h.DockBoard,
		statsHandler:     h.Stats,
		exportHandler:    h.Export,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/loadings", s.CreateLoading)
	api.GET("/loadings", s.ListLoadings)
	api.POST("/loadings/:id/approve", s.ApproveLoading)
	api.POST("/loadings/:id/revert", s.RevertLoading)
	api.POST("/loadings/:id/start", s.StartLoading)
	api.POST("/loadings/:id/pause", s.PauseLoading)
	api.POST("/loadings/:id/complete", s.CompleteLoading)
	api.POST("/loadings/:id/cancel", s.CancelLoading)
	api.POST("/loadings/:id/scans", s.ScanProduct)
	api.GET("/loadings/:id/checklist", s.GetChecklist)

	api.GET("/docks", s.GetDockBoard)
	api.POST("/docks/release-all", s.ReleaseAllDocks)

	api.GET("/stats", s.GetStats)
	api.GET("/exports/daily", s.ExportDay)

	api.POST("/admin/archive-sweep", s.RunArchiveSweep)
	api.POST("/admin/reset", s.ResetEngine)
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false when the response was already written.
func bindAndValidate(ctx echo.Context, req interface{}) bool {
	if err := ctx.Bind(req); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
		})
		return false
	}
	return true
}

func pathLoadingID(ctx echo.Context) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid loading id",
		})
		return kernel.UUID{}, false
	}
	return id, true
}

// CreateLoading handles POST /api/v1/loadings.
func (s *Server) CreateLoading(ctx echo.Context) error {
	var req CreateLoadingRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	priority, err := loading.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(ctx, err)
	}

	var cmd commands.EnqueueLoadingCommand
	if req.Origin == "manual" {
		cmd, err = commands.NewEnqueueManualLoadingCommand(req.Driver, req.Vehicle, req.Route, priority)
	} else {
		lines := make([]commands.ProductLineInput, 0, len(req.ProductLines))
		for _, line := range req.ProductLines {
			lines = append(lines, commands.ProductLineInput{
				Code:        line.Code,
				Description: line.Description,
				Unit:        line.Unit,
				ExpectedQty: line.ExpectedQty,
			})
		}
		cmd, err = commands.NewEnqueueImportedLoadingCommand(
			req.InvoiceNumber, req.Counterparty, req.DeliveryAddress, req.Route, priority, lines)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.enqueueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toLoadingResponse(snapshot))
}

// ListLoadings handles GET /api/v1/loadings with optional status and q filters.
func (s *Server) ListLoadings(ctx echo.Context) error {
	query, err := queries.NewListLoadingsQuery(ctx.QueryParam("status"), ctx.QueryParam("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LoadingSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, LoadingSummaryResponse{
			ID:            row.ID,
			Origin:        row.Origin,
			Status:        row.Status,
			Priority:      row.Priority,
			DockID:        row.DockID,
			Driver:        row.Driver,
			Vehicle:       row.Vehicle,
			Route:         row.Route,
			InvoiceNumber: row.InvoiceNumber,
			Counterparty:  row.Counterparty,
			CreatedAt:     row.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApproveLoading handles POST /api/v1/loadings/:id/approve.
func (s *Server) ApproveLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewApproveLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RevertLoading handles POST /api/v1/loadings/:id/revert.
func (s *Server) RevertLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewRevertLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.revertHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartLoading handles POST /api/v1/loadings/:id/start.
func (s *Server) StartLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	var req StartLoadingRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd, err := commands.NewStartLoadingCommand(id, req.DockID, req.Override)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.startHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := StartLoadingResponse{DockID: result.DockID}
	if result.Warning != nil {
		response.Warning = &ConflictWarning{
			DockID:             result.Warning.DockID,
			DisplacedLoadingID: result.Warning.DisplacedLoadingID,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PauseLoading handles POST /api/v1/loadings/:id/pause.
func (s *Server) PauseLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewPauseLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.pauseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteLoading handles POST /api/v1/loadings/:id/complete.
func (s *Server) CompleteLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelLoading handles POST /api/v1/loadings/:id/cancel.
func (s *Server) CancelLoading(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ScanProduct handles POST /api/v1/loadings/:id/scans.
func (s *Server) ScanProduct(ctx echo.Context) error {
	id, ok := pathLoadingID(ctx)
	if !ok {
		return nil
	}

	var req ScanRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd, err := commands.NewScanProductCommand(id, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.scanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ScanResponse{
		Code:              result.Line.Code,
		ScannedQty:        result.Line.ScannedQty,
		ExpectedQty:       result.Line.ExpectedQty,
		LineCompleted:     result.LineCompleted,
		AllLinesCompleted: result.AllLinesCompleted,
	})
}

// GetChecklist handles GET /api/v1/loadings/:id/checklist.
func (s *Server) GetChecklist(ctx echo.Context) error {
	query, err := queries.NewGetChecklistQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	checklist, err := s.checklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := ChecklistResponse{
		LoadingID:     checklist.LoadingID,
		InvoiceNumber: checklist.InvoiceNumber,
		Lines:         make([]ProductLineResponse, 0, len(checklist.Lines)),
		TotalExpected: checklist.TotalExpected,
		TotalScanned:  checklist.TotalScanned,
		AllCompleted:  checklist.AllCompleted,
	}
	for _, line := range checklist.Lines {
		response.Lines = append(response.Lines, ProductLineResponse{
			Code:        line.Code,
			Description: line.Description,
			Unit:        line.Unit,
			ExpectedQty: line.ExpectedQty,
			ScannedQty:  line.ScannedQty,
			Completed:   line.Completed,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDockBoard handles GET /api/v1/docks.
func (s *Server) GetDockBoard(ctx echo.Context) error {
	board, err := s.dockBoardHandler.Handle(ctx.Request().Context(), queries.NewGetDockBoardQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DockResponse, 0, len(board))
	for _, row := range board {
		response = append(response, DockResponse{
			DockID:        row.DockID,
			Occupied:      row.Occupied,
			LoadingID:     row.LoadingID,
			Reference:     row.Reference,
			Route:         row.Route,
			OccupiedSince: row.OccupiedSince,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReleaseAllDocks handles POST /api/v1/docks/release-all.
func (s *Server) ReleaseAllDocks(ctx echo.Context) error {
	var req ConfirmRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd, err := commands.NewReleaseAllDocksCommand(req.Confirmed)
	if err != nil {
		return writeError(ctx, err)
	}

	released, err := s.releaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CountResponse{Count: released})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.statsHandler.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := StatsResponse{
		Waiting:            stats.Waiting,
		Approved:           stats.Approved,
		InProgress:         stats.InProgress,
		Completed:          stats.Completed,
		Cancelled:          stats.Cancelled,
		CompletedToday:     stats.CompletedToday,
		DocksTotal:         stats.DocksTotal,
		DocksOccupied:      stats.DocksOccupied,
		UtilizationPercent: stats.UtilizationPercent,
	}
	for _, d := range stats.LongOccupied {
		response.LongOccupied = append(response.LongOccupied, LongOccupiedResponse{
			DockID:         d.DockID,
			LoadingID:      d.LoadingID,
			OccupiedSince:  d.OccupiedSince,
			HeldForMinutes: int(d.HeldFor.Minutes()),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// ExportDay handles GET /api/v1/exports/daily?date=YYYY-MM-DD and streams the
// day's terminal loadings as CSV. The date defaults to today.
func (s *Server) ExportDay(ctx echo.Context) error {
	day := time.Now()
	if raw := strings.TrimSpace(ctx.QueryParam("date")); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid date, expected YYYY-MM-DD",
			})
		}
		day = parsed
	}

	rows, err := s.exportHandler.Handle(ctx.Request().Context(), queries.NewExportDayQuery(day))
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="loadings-`+day.Format("2006-01-02")+`.csv"`)
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response())
	header := []string{
		"date", "time", "origin", "counterparty", "reference",
		"route", "dock", "status", "start_time", "end_time",
	}
	if err = w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date, row.Time, row.Origin, row.Counterparty, row.Reference,
			row.Route, row.Dock, row.Status, row.StartTime, row.EndTime,
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// RunArchiveSweep handles POST /api/v1/admin/archive-sweep, the manual
// counterpart of the nightly job.
func (s *Server) RunArchiveSweep(ctx echo.Context) error {
	cmd, err := commands.NewArchiveCompletedCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	archived, err := s.archiveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CountResponse{Count: archived})
}

// ResetEngine handles POST /api/v1/admin/reset.
func (s *Server) ResetEngine(ctx echo.Context) error {
	var req ConfirmRequest
	if !bindAndValidate(ctx, &req) {
		return nil
	}

	cmd, err := commands.NewResetEngineCommand(req.Confirmed)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.resetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toLoadingResponse(s loading.Snapshot) LoadingResponse {
	response := LoadingResponse{
		ID:              s.ID,
		Origin:          s.Origin.String(),
		Status:          s.Status.String(),
		Priority:        s.Priority.String(),
		DockID:          s.DockID,
		Driver:          s.Driver,
		Vehicle:         s.Vehicle,
		Route:           s.Route,
		InvoiceNumber:   s.InvoiceNumber,
		Counterparty:    s.Counterparty,
		DeliveryAddress: s.DeliveryAddress,
		CreatedAt:       s.CreatedAt,
		ApprovedAt:      s.ApprovedAt,
		StartedAt:       s.StartedAt,
		PausedAt:        s.PausedAt,
		CompletedAt:     s.CompletedAt,
		CancelledAt:     s.CancelledAt,
	}
	for _, line := range s.ProductLines {
		response.ProductLines = append(response.ProductLines, ProductLineResponse{
			Code:        line.Code,
			Description: line.Description,
			Unit:        line.Unit,
			ExpectedQty: line.ExpectedQty,
			ScannedQty:  line.ScannedQty,
			Completed:   line.Completed,
		})
	}
	return response
}
