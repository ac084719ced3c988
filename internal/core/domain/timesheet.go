package domain

import "time"

// TimesheetStatus is the review status of a timesheet entry.
type TimesheetStatus string

const (
	StatusPending  TimesheetStatus = "pending"
	StatusAccepted TimesheetStatus = "accepted"
	StatusRejected TimesheetStatus = "rejected"
)

// IsValid reports whether s is one of the three known statuses.
func (s TimesheetStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Timesheet represents one employee's work entry for one calendar date.
// At most one timesheet exists per (UserID, WorkDate) pair.
type Timesheet struct {
	TimesheetID  string `json:"timesheetID"` // Primary Key (UUID)
	UserID       string `json:"userID"`      // Owning employee
	EmployeeName string `json:"employeeName"`
	// WorkDate is day-granular; the time portion is always midnight UTC.
	WorkDate      time.Time       `json:"workDate"`
	PlannedWork   string          `json:"plannedWork"`
	ActualWork    string          `json:"actualWork"`
	Remarks       string          `json:"remarks,omitempty"`
	Status        TimesheetStatus `json:"status"`
	AdminComments string          `json:"adminComments,omitempty"`
	ReviewerID    *string         `json:"reviewerID,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
	AuditFields
}

// EditableByOwner reports whether the owning employee may still overwrite
// the entry. Accepted entries are frozen for the owner.
func (t Timesheet) EditableByOwner() bool {
	return t.Status == StatusPending || t.Status == StatusRejected
}

// DeletableByOwner reports whether the owning employee may remove the entry.
// Only entries that have never been reviewed (still pending) qualify.
func (t Timesheet) DeletableByOwner() bool {
	return t.Status == StatusPending
}

// TimesheetFilter collects the optional parameters recognised by the
// query engine. Zero values mean "no restriction" for that dimension.
type TimesheetFilter struct {
	UserID string          // owner scoping; always set for employee-tier callers
	Status TimesheetStatus // empty or "all" disables the status match
	From   time.Time       // inclusive lower bound, applied only with To
	To     time.Time       // inclusive upper bound, applied only with From
	Date   time.Time       // exact-day match
	Month  string          // "YYYY-MM" bucket, first to last day of the month
	Search string          // admin only; substring across name/planned/actual

	SortAsc bool // default ordering is work_date DESC
	Limit   int
	Offset  int
}

// TimesheetExportRow is a timesheet joined with its owner's identity
// columns for export rendering. The employee fields are empty when the
// owning account no longer exists; EmployeeName always carries the
// denormalized copy stored on the record.
type TimesheetExportRow struct {
	Timesheet
	EmployeeEmail      string `json:"employeeEmail"`
	EmployeeNumber     string `json:"employeeNumber"`
	EmployeeDepartment string `json:"employeeDepartment"`
}
