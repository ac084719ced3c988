package services

import (
	"context"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
)

// TimesheetEmployeeSvc is the capability tier granted to an authenticated
// employee: operations scoped to the caller's own records.
type TimesheetEmployeeSvc interface {
	// CreateTimesheet creates a pending entry for the owner. A second
	// entry for the same date fails with apperrors.ErrDuplicate.
	CreateTimesheet(ctx context.Context, ownerID string, req dto.CreateTimesheetRequest) (*domain.Timesheet, error)

	// UpdateTimesheet overwrites the work fields of the caller's own
	// entry while its status still permits edits.
	UpdateTimesheet(ctx context.Context, timesheetID string, requesterID string, req dto.UpdateTimesheetRequest) (*domain.Timesheet, error)

	// DeleteTimesheet removes the caller's own pending entry.
	DeleteTimesheet(ctx context.Context, timesheetID string, requesterID string) error

	// ListOwnTimesheets lists the caller's entries; the filter's owner
	// scoping is forced to the caller regardless of its UserID field.
	ListOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.Timesheet, error)

	// ExportOwnTimesheets returns the caller's entries joined with
	// identity columns for rendering.
	ExportOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error)
}

// TimesheetAdminSvc is the capability tier granted to administrators:
// unrestricted queries, review, aggregates, and exports.
type TimesheetAdminSvc interface {
	// ListTimesheets lists entries across all owners per the filter.
	ListTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.Timesheet, error)

	// ReviewTimesheet sets the entry's status, comments, and reviewer
	// metadata. No transition guard applies; any status may be reviewed
	// again.
	ReviewTimesheet(ctx context.Context, timesheetID string, reviewerID string, req dto.ReviewTimesheetRequest) (*domain.Timesheet, error)

	// GetDashboardSummary returns the aggregate counts for the dashboard.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)

	// ExportTimesheets returns entries matching the filter joined with
	// identity columns for rendering.
	ExportTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error)

	// ExportTimesheet returns a single entry joined with identity columns.
	ExportTimesheet(ctx context.Context, timesheetID string) (*domain.TimesheetExportRow, error)
}

// TimesheetSvcFacade combines both capability tiers.
type TimesheetSvcFacade interface {
	TimesheetEmployeeSvc
	TimesheetAdminSvc
}
