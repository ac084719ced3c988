package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/apperrors"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portsrepo "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/repositories"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
)

type timesheetService struct {
	tsRepo   portsrepo.TimesheetRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewTimesheetService creates the timesheet lifecycle service.
func NewTimesheetService(tsRepo portsrepo.TimesheetRepositoryFacade, userRepo portsrepo.UserReader) portssvc.TimesheetSvcFacade {
	return &timesheetService{tsRepo: tsRepo, userRepo: userRepo}
}

var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// normalizeDate truncates to day granularity in UTC; the store keys
// uniqueness on (owner, day).
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *timesheetService) CreateTimesheet(ctx context.Context, ownerID string, req dto.CreateTimesheetRequest) (*domain.Timesheet, error) {
	workDate := normalizeDate(req.Date.Time)

	existing, err := s.tsRepo.FindTimesheetByUserAndDate(ctx, ownerID, workDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing timesheet: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("timesheet for %s: %w", workDate.Format("2006-01-02"), apperrors.ErrDuplicate)
	}

	owner, err := s.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner for timesheet: %w", err)
	}

	now := time.Now()
	ts := domain.Timesheet{
		TimesheetID:  uuid.NewString(),
		UserID:       ownerID,
		EmployeeName: owner.Name,
		WorkDate:     workDate,
		PlannedWork:  req.PlannedWork,
		ActualWork:   req.ActualWork,
		Remarks:      req.Remarks,
		Status:       domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	// The pre-check races with concurrent creates; the store's uniqueness
	// constraint settles it and the repo reports that as ErrDuplicate too.
	if err := s.tsRepo.SaveTimesheet(ctx, ts); err != nil {
		return nil, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return &ts, nil
}

func (s *timesheetService) UpdateTimesheet(ctx context.Context, timesheetID string, requesterID string, req dto.UpdateTimesheetRequest) (*domain.Timesheet, error) {
	ts, err := s.tsRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find timesheet for update: %w", err)
	}
	// A foreign-owned record is reported exactly like a missing one.
	if ts.UserID != requesterID {
		return nil, apperrors.ErrNotFound
	}
	if !ts.EditableByOwner() {
		return nil, fmt.Errorf("timesheet is %s: %w", ts.Status, apperrors.ErrInvalidState)
	}

	ts.PlannedWork = req.PlannedWork
	ts.ActualWork = req.ActualWork
	ts.Remarks = req.Remarks
	ts.LastUpdatedAt = time.Now()
	ts.LastUpdatedBy = requesterID

	if err := s.tsRepo.UpdateTimesheet(ctx, *ts); err != nil {
		return nil, fmt.Errorf("failed to update timesheet: %w", err)
	}

	return ts, nil
}

func (s *timesheetService) DeleteTimesheet(ctx context.Context, timesheetID string, requesterID string) error {
	ts, err := s.tsRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return fmt.Errorf("failed to find timesheet for delete: %w", err)
	}
	if ts.UserID != requesterID {
		return apperrors.ErrNotFound
	}
	if !ts.DeletableByOwner() {
		return fmt.Errorf("timesheet is %s: %w", ts.Status, apperrors.ErrInvalidState)
	}

	if err := s.tsRepo.DeleteTimesheet(ctx, timesheetID, requesterID); err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	return nil
}

func (s *timesheetService) ListOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.Timesheet, error) {
	filter.UserID = ownerID
	filter.Search = "" // admin-only dimension
	timesheets, err := s.tsRepo.ListTimesheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheets, nil
}

func (s *timesheetService) ExportOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error) {
	filter.UserID = ownerID
	filter.Search = ""
	rows, err := s.tsRepo.ListTimesheetsForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export timesheets: %w", err)
	}
	return rows, nil
}

func (s *timesheetService) ListTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.Timesheet, error) {
	timesheets, err := s.tsRepo.ListTimesheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheets, nil
}

func (s *timesheetService) ReviewTimesheet(ctx context.Context, timesheetID string, reviewerID string, req dto.ReviewTimesheetRequest) (*domain.Timesheet, error) {
	newStatus := domain.TimesheetStatus(req.Status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("unknown status %q: %w", req.Status, apperrors.ErrValidation)
	}

	ts, err := s.tsRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find timesheet for review: %w", err)
	}

	// No transition guard: any status may be reviewed into any other,
	// including back to pending.
	now := time.Now()
	ts.Status = newStatus
	ts.AdminComments = req.AdminComments
	ts.ReviewerID = &reviewerID
	ts.ReviewedAt = &now
	ts.LastUpdatedAt = now
	ts.LastUpdatedBy = reviewerID

	if err := s.tsRepo.ReviewTimesheet(ctx, *ts); err != nil {
		return nil, fmt.Errorf("failed to review timesheet: %w", err)
	}

	return ts, nil
}

func (s *timesheetService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.tsRepo.GetDashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return summary, nil
}

func (s *timesheetService) ExportTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error) {
	rows, err := s.tsRepo.ListTimesheetsForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export timesheets: %w", err)
	}
	return rows, nil
}

func (s *timesheetService) ExportTimesheet(ctx context.Context, timesheetID string) (*domain.TimesheetExportRow, error) {
	row, err := s.tsRepo.FindTimesheetForExport(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to export timesheet: %w", err)
	}
	return row, nil
}
