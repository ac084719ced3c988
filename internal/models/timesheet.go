package models

import (
	"database/sql"
	"time"
)

// Timesheet is the database representation of a work entry.
// (user_id, work_date) carries a uniqueness constraint.
type Timesheet struct {
	TimesheetID   string         `db:"timesheet_id"`
	UserID        string         `db:"user_id"`
	EmployeeName  string         `db:"employee_name"`
	WorkDate      time.Time      `db:"work_date"`
	PlannedWork   string         `db:"planned_work"`
	ActualWork    string         `db:"actual_work"`
	Remarks       sql.NullString `db:"remarks"`
	Status        string         `db:"status"`
	AdminComments sql.NullString `db:"admin_comments"`
	ReviewerID    sql.NullString `db:"reviewer_id"`
	ReviewedAt    sql.NullTime   `db:"reviewed_at"`
	AuditFields
}
