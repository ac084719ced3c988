package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/apperrors"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portsrepo "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/repositories"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/models"
)

type PgxTimesheetRepository struct {
	BaseRepository
}

func newPgxTimesheetRepository(db *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTimesheetRepository implements portsrepo.TimesheetRepositoryFacade
var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

// Helper to convert domain.Timesheet to models.Timesheet
func toModelTimesheet(d domain.Timesheet) models.Timesheet {
	m := models.Timesheet{
		TimesheetID:  d.TimesheetID,
		UserID:       d.UserID,
		EmployeeName: d.EmployeeName,
		WorkDate:     d.WorkDate,
		PlannedWork:  d.PlannedWork,
		ActualWork:   d.ActualWork,
		Status:       string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Remarks != "" {
		m.Remarks = sql.NullString{String: d.Remarks, Valid: true}
	}
	if d.AdminComments != "" {
		m.AdminComments = sql.NullString{String: d.AdminComments, Valid: true}
	}
	if d.ReviewerID != nil {
		m.ReviewerID = sql.NullString{String: *d.ReviewerID, Valid: true}
	}
	if d.ReviewedAt != nil {
		m.ReviewedAt = sql.NullTime{Time: *d.ReviewedAt, Valid: true}
	}
	return m
}

// Helper to convert models.Timesheet to domain.Timesheet
func toDomainTimesheet(m models.Timesheet) domain.Timesheet {
	d := domain.Timesheet{
		TimesheetID:  m.TimesheetID,
		UserID:       m.UserID,
		EmployeeName: m.EmployeeName,
		WorkDate:     m.WorkDate,
		PlannedWork:  m.PlannedWork,
		ActualWork:   m.ActualWork,
		Status:       domain.TimesheetStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Remarks.Valid {
		d.Remarks = m.Remarks.String
	}
	if m.AdminComments.Valid {
		d.AdminComments = m.AdminComments.String
	}
	if m.ReviewerID.Valid {
		reviewerID := m.ReviewerID.String
		d.ReviewerID = &reviewerID
	}
	if m.ReviewedAt.Valid {
		reviewedAt := m.ReviewedAt.Time
		d.ReviewedAt = &reviewedAt
	}
	return d
}

const timesheetColumns = `t.timesheet_id, t.user_id, t.employee_name, t.work_date, t.planned_work, t.actual_work, t.remarks, t.status, t.admin_comments, t.reviewer_id, t.reviewed_at, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

func scanTimesheet(row pgx.Row) (*models.Timesheet, error) {
	var m models.Timesheet
	err := row.Scan(
		&m.TimesheetID,
		&m.UserID,
		&m.EmployeeName,
		&m.WorkDate,
		&m.PlannedWork,
		&m.ActualWork,
		&m.Remarks,
		&m.Status,
		&m.AdminComments,
		&m.ReviewerID,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// buildTimesheetFilter translates a domain filter into a WHERE fragment
// and its positional arguments. All list, export, and dashboard-adjacent
// query paths share this single builder.
func buildTimesheetFilter(f domain.TimesheetFilter) (string, []any) {
	clauses := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.UserID != "" {
		clauses = append(clauses, "t.user_id = "+arg(f.UserID))
	}
	if f.Status != "" && f.Status != "all" {
		clauses = append(clauses, "t.status = "+arg(string(f.Status)))
	}
	if !f.From.IsZero() && !f.To.IsZero() {
		clauses = append(clauses, "t.work_date >= "+arg(f.From))
		clauses = append(clauses, "t.work_date <= "+arg(f.To))
	}
	if !f.Date.IsZero() {
		clauses = append(clauses, "t.work_date = "+arg(f.Date))
	}
	if f.Month != "" {
		if monthStart, err := time.Parse("2006-01", f.Month); err == nil {
			clauses = append(clauses, "t.work_date >= "+arg(monthStart))
			clauses = append(clauses, "t.work_date < "+arg(monthStart.AddDate(0, 1, 0)))
		}
	}
	if f.Search != "" {
		pattern := arg("%" + f.Search + "%")
		clauses = append(clauses, fmt.Sprintf(
			"(t.employee_name ILIKE %s OR t.planned_work ILIKE %s OR t.actual_work ILIKE %s)",
			pattern, pattern, pattern))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// timesheetOrderClause returns the ordering for list/export queries.
// Descending by date is the default; one employee self-export path asks
// for ascending.
func timesheetOrderClause(f domain.TimesheetFilter) string {
	if f.SortAsc {
		return "ORDER BY t.work_date ASC, t.created_at ASC"
	}
	return "ORDER BY t.work_date DESC, t.created_at DESC"
}

func (r *PgxTimesheetRepository) SaveTimesheet(ctx context.Context, ts domain.Timesheet) error {
	m := toModelTimesheet(ts)
	query := `
        INSERT INTO timesheets (timesheet_id, user_id, employee_name, work_date, planned_work, actual_work, remarks, status, admin_comments, reviewer_id, reviewed_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TimesheetID,
		m.UserID,
		m.EmployeeName,
		m.WorkDate,
		m.PlannedWork,
		m.ActualWork,
		m.Remarks,
		m.Status,
		m.AdminComments,
		m.ReviewerID,
		m.ReviewedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		// A concurrent create for the same (user, date) loses the race at
		// the uniqueness constraint; report it the same as the pre-check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("timesheet for this date already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save timesheet: %w", err)
	}
	return nil
}

func (r *PgxTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets t WHERE t.timesheet_id = $1;`
	m, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet by ID %s: %w", timesheetID, err)
	}
	d := toDomainTimesheet(*m)
	return &d, nil
}

func (r *PgxTimesheetRepository) FindTimesheetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets t WHERE t.user_id = $1 AND t.work_date = $2;`
	m, err := scanTimesheet(r.Pool.QueryRow(ctx, query, userID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet by user and date: %w", err)
	}
	d := toDomainTimesheet(*m)
	return &d, nil
}

func (r *PgxTimesheetRepository) ListTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.Timesheet, error) {
	where, args := buildTimesheetFilter(filter)
	query := `SELECT ` + timesheetColumns + ` FROM timesheets t ` + where + ` ` + timesheetOrderClause(filter)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := []domain.Timesheet{}
	for rows.Next() {
		m, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		timesheets = append(timesheets, toDomainTimesheet(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timesheet rows: %w", rows.Err())
	}

	return timesheets, nil
}

const exportColumns = timesheetColumns + `, COALESCE(NULLIF(u.name, ''), t.employee_name), COALESCE(u.email, ''), COALESCE(u.employee_id, ''), COALESCE(u.department, '')`

const exportJoin = `LEFT JOIN users u ON u.user_id = t.user_id AND u.deleted_at IS NULL`

func scanExportRow(rows pgx.Row) (*domain.TimesheetExportRow, error) {
	var m models.Timesheet
	var name, email, employeeID, department string
	err := rows.Scan(
		&m.TimesheetID,
		&m.UserID,
		&m.EmployeeName,
		&m.WorkDate,
		&m.PlannedWork,
		&m.ActualWork,
		&m.Remarks,
		&m.Status,
		&m.AdminComments,
		&m.ReviewerID,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&name,
		&email,
		&employeeID,
		&department,
	)
	if err != nil {
		return nil, err
	}
	ts := toDomainTimesheet(m)
	// Current profile name wins over the denormalized copy when the
	// account still exists.
	if name != "" {
		ts.EmployeeName = name
	}
	return &domain.TimesheetExportRow{
		Timesheet:          ts,
		EmployeeEmail:      email,
		EmployeeNumber:     employeeID,
		EmployeeDepartment: department,
	}, nil
}

func (r *PgxTimesheetRepository) ListTimesheetsForExport(ctx context.Context, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error) {
	where, args := buildTimesheetFilter(filter)
	query := `SELECT ` + exportColumns + ` FROM timesheets t ` + exportJoin + ` ` + where + ` ` + timesheetOrderClause(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets for export: %w", err)
	}
	defer rows.Close()

	result := []domain.TimesheetExportRow{}
	for rows.Next() {
		row, err := scanExportRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		result = append(result, *row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", rows.Err())
	}

	return result, nil
}

func (r *PgxTimesheetRepository) FindTimesheetForExport(ctx context.Context, timesheetID string) (*domain.TimesheetExportRow, error) {
	query := `SELECT ` + exportColumns + ` FROM timesheets t ` + exportJoin + ` WHERE t.timesheet_id = $1;`
	row, err := scanExportRow(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet for export: %w", err)
	}
	return row, nil
}

func (r *PgxTimesheetRepository) UpdateTimesheet(ctx context.Context, ts domain.Timesheet) error {
	m := toModelTimesheet(ts)
	query := `
        UPDATE timesheets
        SET planned_work = $1, actual_work = $2, remarks = $3, last_updated_at = $4, last_updated_by = $5
        WHERE timesheet_id = $6 AND user_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PlannedWork,
		m.ActualWork,
		m.Remarks,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TimesheetID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update timesheet query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("timesheet not found or not owned by requester: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTimesheetRepository) ReviewTimesheet(ctx context.Context, ts domain.Timesheet) error {
	m := toModelTimesheet(ts)
	query := `
        UPDATE timesheets
        SET status = $1, admin_comments = $2, reviewer_id = $3, reviewed_at = $4, last_updated_at = $5, last_updated_by = $6
        WHERE timesheet_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.AdminComments,
		m.ReviewerID,
		m.ReviewedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TimesheetID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute review timesheet query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("timesheet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTimesheetRepository) DeleteTimesheet(ctx context.Context, timesheetID string, ownerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM timesheets WHERE timesheet_id = $1 AND user_id = $2;`, timesheetID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("timesheet not found or not owned by requester: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTimesheetRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL AND role = 'employee') AS employees
		FROM timesheets;
	`
	var summary domain.DashboardSummary
	err := r.Pool.QueryRow(ctx, query).Scan(
		&summary.TotalTimesheets,
		&summary.PendingTimesheets,
		&summary.AcceptedTimesheets,
		&summary.RejectedTimesheets,
		&summary.TotalEmployees,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying dashboard summary: %w", err)
	}
	return &summary, nil
}
