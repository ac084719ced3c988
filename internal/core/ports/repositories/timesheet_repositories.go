package repositories

import (
	"context"
	"time"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// TimesheetReader defines read operations for timesheet data.
type TimesheetReader interface {
	// FindTimesheetByID retrieves a specific entry by its ID.
	FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error)

	// FindTimesheetByUserAndDate retrieves the entry for one owner and one day.
	FindTimesheetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*domain.Timesheet, error)

	// ListTimesheets retrieves entries matching the filter, ordered by
	// work date (descending unless the filter requests ascending).
	ListTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.Timesheet, error)

	// ListTimesheetsForExport retrieves entries matching the filter joined
	// with the owning account's identity columns.
	ListTimesheetsForExport(ctx context.Context, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error)

	// FindTimesheetForExport retrieves a single entry joined with its
	// owner's identity columns.
	FindTimesheetForExport(ctx context.Context, timesheetID string) (*domain.TimesheetExportRow, error)
}

// TimesheetWriter defines write operations for timesheet data.
type TimesheetWriter interface {
	// SaveTimesheet persists a new entry. A (owner, date) collision is
	// reported as apperrors.ErrDuplicate, whether detected up front or by
	// the store's uniqueness constraint.
	SaveTimesheet(ctx context.Context, ts domain.Timesheet) error

	// UpdateTimesheet overwrites the work fields of an existing entry.
	UpdateTimesheet(ctx context.Context, ts domain.Timesheet) error

	// ReviewTimesheet sets status, comments, and reviewer metadata.
	ReviewTimesheet(ctx context.Context, ts domain.Timesheet) error

	// DeleteTimesheet removes an entry owned by ownerID. Missing or
	// foreign-owned entries are reported as apperrors.ErrNotFound.
	DeleteTimesheet(ctx context.Context, timesheetID string, ownerID string) error
}

// TimesheetAggregator defines the dashboard aggregate query.
type TimesheetAggregator interface {
	// GetDashboardSummary returns timesheet counts by status plus the
	// number of active accounts.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

// TimesheetRepositoryFacade combines all timesheet repository interfaces.
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
	TimesheetAggregator
}
