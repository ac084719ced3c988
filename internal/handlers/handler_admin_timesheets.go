package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/middleware"
)

// adminTimesheetHandler handles the admin-facing review, reporting, and
// export endpoints. It sees every employee's records.
type adminTimesheetHandler struct {
	timesheetService portssvc.TimesheetAdminSvc
	exporter         portssvc.TimesheetExporter
}

func newAdminTimesheetHandler(ts portssvc.TimesheetAdminSvc, exporter portssvc.TimesheetExporter) *adminTimesheetHandler {
	return &adminTimesheetHandler{
		timesheetService: ts,
		exporter:         exporter,
	}
}

// registerAdminTimesheetRoutes registers the review and export routes.
// downloadRg carries the query-token auth fallback; everything else
// requires header auth.
func registerAdminTimesheetRoutes(rg *gin.RouterGroup, downloadRg *gin.RouterGroup, ts portssvc.TimesheetAdminSvc, exporter portssvc.TimesheetExporter) {
	h := newAdminTimesheetHandler(ts, exporter)

	rg.GET("/timesheets", h.listTimesheets)
	rg.PUT("/timesheets/:id/review", h.reviewTimesheet)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/timesheets/export", h.exportTimesheets)
	rg.GET("/timesheets/export/csv", h.exportTimesheetsCSV)
	rg.GET("/timesheets/:id/export/pdf", h.downloadTimesheetPDF)

	downloadRg.GET("/timesheets/:id/download", h.downloadTimesheetPDF)
}

// listTimesheets godoc
// @Summary List timesheet entries
// @Description Lists entries across all employees, filterable by employee, status, date range, month, and free-text search.
// @Tags admin
// @Produce json
// @Param employee query string false "Employee user ID"
// @Param status query string false "Status filter (pending|accepted|rejected|all)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param search query string false "Free-text search over name and work fields"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTimesheetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/timesheets [get]
func (h *adminTimesheetHandler) listTimesheets(c *gin.Context) {
	var params dto.ListTimesheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date parameter: " + err.Error()})
		return
	}

	timesheets, err := h.timesheetService.ListTimesheets(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimesheetsResponse(timesheets))
}

// reviewTimesheet godoc
// @Summary Review a timesheet entry
// @Description Sets the entry's status with optional comments. Any entry may be re-reviewed, including back to pending.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Timesheet ID"
// @Param review body dto.ReviewTimesheetRequest true "Review verdict"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/timesheets/{id}/review [put]
func (h *adminTimesheetHandler) reviewTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("id")

	var req dto.ReviewTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reviewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ts, err := h.timesheetService.ReviewTimesheet(c.Request.Context(), timesheetID, reviewerID, req)
	if err != nil {
		respondWithError(c, err, "Failed to review timesheet")
		return
	}

	logger.Info("Timesheet reviewed", slog.String("timesheet_id", timesheetID), slog.String("status", string(ts.Status)))
	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Returns aggregate counts: total, pending, accepted, and rejected entries plus active employees.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *adminTimesheetHandler) getDashboard(c *gin.Context) {
	summary, err := h.timesheetService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to get dashboard summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// bindExportFilter parses the shared export query parameters.
func bindExportFilter(c *gin.Context) (domain.TimesheetFilter, bool) {
	var params dto.ListTimesheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return domain.TimesheetFilter{}, false
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date parameter: " + err.Error()})
		return domain.TimesheetFilter{}, false
	}
	// Exports are unpaginated.
	filter.Limit = 0
	filter.Offset = 0
	return filter, true
}

func (h *adminTimesheetHandler) writeCSVExport(c *gin.Context, rows []domain.TimesheetExportRow) {
	filename := "timesheets_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv")

	if err := h.exporter.WriteCSV(c.Writer, rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write CSV export", slog.String("error", err.Error()))
	}
}

func (h *adminTimesheetHandler) writePDFExport(c *gin.Context, filename, title string, rows []domain.TimesheetExportRow) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")

	if err := h.exporter.WritePDF(c.Writer, title, rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write PDF export", slog.String("error", err.Error()))
	}
}

// exportTimesheetsCSV godoc
// @Summary Export timesheets as CSV
// @Description Streams entries matching the filters as a CSV attachment.
// @Tags admin
// @Produce text/csv
// @Param employee query string false "Employee user ID"
// @Param status query string false "Status filter"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/timesheets/export/csv [get]
func (h *adminTimesheetHandler) exportTimesheetsCSV(c *gin.Context) {
	filter, ok := bindExportFilter(c)
	if !ok {
		return
	}

	rows, err := h.timesheetService.ExportTimesheets(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to export timesheets")
		return
	}

	h.writeCSVExport(c, rows)
}

// exportTimesheets godoc
// @Summary Export timesheets in a chosen format
// @Description Streams entries matching the filters as CSV or PDF per the format parameter.
// @Tags admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "Output format (csv|pdf)"
// @Param employee query string false "Employee user ID"
// @Param status query string false "Status filter"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "Exported content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/timesheets/export [get]
func (h *adminTimesheetHandler) exportTimesheets(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "pdf" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported format: " + format})
		return
	}

	filter, ok := bindExportFilter(c)
	if !ok {
		return
	}

	rows, err := h.timesheetService.ExportTimesheets(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to export timesheets")
		return
	}

	if format == "pdf" {
		filename := "timesheets_" + time.Now().Format("2006-01-02") + ".pdf"
		h.writePDFExport(c, filename, "Timesheet Report", rows)
		return
	}
	h.writeCSVExport(c, rows)
}

// downloadTimesheetPDF godoc
// @Summary Download a single timesheet as PDF
// @Description Streams one entry as a PDF attachment. The download route also accepts the token via the "token" query parameter for browser-initiated downloads.
// @Tags admin
// @Produce application/pdf
// @Param id path string true "Timesheet ID"
// @Success 200 {string} string "PDF content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/timesheets/{id}/download [get]
func (h *adminTimesheetHandler) downloadTimesheetPDF(c *gin.Context) {
	timesheetID := c.Param("id")

	row, err := h.timesheetService.ExportTimesheet(c.Request.Context(), timesheetID)
	if err != nil {
		respondWithError(c, err, "Failed to export timesheet")
		return
	}

	filename := "timesheet_" + row.WorkDate.Format("2006-01-02") + ".pdf"
	h.writePDFExport(c, filename, "Timesheet", []domain.TimesheetExportRow{*row})
}
