package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/middleware"
)

// timesheetHandler handles the employee-facing timesheet endpoints. Every
// operation is scoped to the authenticated caller's own records.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetEmployeeSvc
	exporter         portssvc.TimesheetExporter
}

func newTimesheetHandler(ts portssvc.TimesheetEmployeeSvc, exporter portssvc.TimesheetExporter) *timesheetHandler {
	return &timesheetHandler{
		timesheetService: ts,
		exporter:         exporter,
	}
}

// registerTimesheetRoutes registers the employee-facing timesheet routes.
func registerTimesheetRoutes(rg *gin.RouterGroup, ts portssvc.TimesheetEmployeeSvc, exporter portssvc.TimesheetExporter) {
	h := newTimesheetHandler(ts, exporter)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.GET("", h.listOwnTimesheets)
		timesheets.POST("", h.createTimesheet)
		timesheets.PUT("/:id", h.updateTimesheet)
		timesheets.DELETE("/:id", h.deleteTimesheet)
		timesheets.GET("/export/csv", h.exportOwnCSV)
		timesheets.GET("/export/pdf", h.exportOwnPDF)
	}
}

// createTimesheet godoc
// @Summary Create a timesheet entry
// @Description Creates a pending entry for the authenticated employee. One entry per day.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param timesheet body dto.CreateTimesheetRequest true "Timesheet details"
// @Success 201 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "An entry for that date already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [post]
func (h *timesheetHandler) createTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create timesheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ts, err := h.timesheetService.CreateTimesheet(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create timesheet")
		return
	}

	logger.Info("Timesheet created", slog.String("timesheet_id", ts.TimesheetID))
	c.JSON(http.StatusCreated, dto.ToTimesheetResponse(ts))
}

// listOwnTimesheets godoc
// @Summary List own timesheet entries
// @Description Lists the authenticated employee's entries, newest work date first.
// @Tags timesheets
// @Produce json
// @Param status query string false "Status filter (pending|accepted|rejected|all)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTimesheetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [get]
func (h *timesheetHandler) listOwnTimesheets(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

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

	timesheets, err := h.timesheetService.ListOwnTimesheets(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list timesheets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimesheetsResponse(timesheets))
}

// updateTimesheet godoc
// @Summary Update a timesheet entry
// @Description Overwrites the work fields of the caller's own pending or rejected entry.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param id path string true "Timesheet ID"
// @Param timesheet body dto.UpdateTimesheetRequest true "Updated details"
// @Success 200 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry is not editable in its current status"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id} [put]
func (h *timesheetHandler) updateTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("id")

	var req dto.UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ts, err := h.timesheetService.UpdateTimesheet(c.Request.Context(), timesheetID, requesterID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update timesheet")
		return
	}

	logger.Info("Timesheet updated", slog.String("timesheet_id", timesheetID))
	c.JSON(http.StatusOK, dto.ToTimesheetResponse(ts))
}

// deleteTimesheet godoc
// @Summary Delete a timesheet entry
// @Description Deletes the caller's own entry while it is still pending.
// @Tags timesheets
// @Produce json
// @Param id path string true "Timesheet ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry is no longer deletable"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{id} [delete]
func (h *timesheetHandler) deleteTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("id")

	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.timesheetService.DeleteTimesheet(c.Request.Context(), timesheetID, requesterID); err != nil {
		respondWithError(c, err, "Failed to delete timesheet")
		return
	}

	logger.Info("Timesheet deleted", slog.String("timesheet_id", timesheetID))
	c.Status(http.StatusNoContent)
}

// exportOwnCSV godoc
// @Summary Export own timesheets as CSV
// @Description Streams the caller's entries as a CSV attachment, oldest work date first.
// @Tags timesheets
// @Produce text/csv
// @Param status query string false "Status filter"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param month query string false "Month filter (YYYY-MM)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/export/csv [get]
func (h *timesheetHandler) exportOwnCSV(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

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
	// The personal CSV reads chronologically, unlike every other listing.
	filter.SortAsc = true
	filter.Limit = 0

	rows, err := h.timesheetService.ExportOwnTimesheets(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondWithError(c, err, "Failed to export timesheets")
		return
	}

	filename := "my_timesheets_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv")

	if err := h.exporter.WriteCSV(c.Writer, rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write CSV export", slog.String("error", err.Error()))
	}
}

// exportOwnPDF godoc
// @Summary Export own timesheets as PDF
// @Description Streams the caller's entries as a PDF attachment, newest work date first.
// @Tags timesheets
// @Produce application/pdf
// @Param status query string false "Status filter"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param month query string false "Month filter (YYYY-MM)"
// @Success 200 {string} string "PDF content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/export/pdf [get]
func (h *timesheetHandler) exportOwnPDF(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

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
	filter.Limit = 0

	rows, err := h.timesheetService.ExportOwnTimesheets(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondWithError(c, err, "Failed to export timesheets")
		return
	}

	filename := "my_timesheets_" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")

	if err := h.exporter.WritePDF(c.Writer, "My Timesheets", rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write PDF export", slog.String("error", err.Error()))
	}
}
