package dto

import (
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// CreateTimesheetRequest defines the data an employee supplies for a new entry.
type CreateTimesheetRequest struct {
	Date        DateOnly `json:"date" binding:"required"`
	PlannedWork string   `json:"plannedWork" binding:"required"`
	ActualWork  string   `json:"actualWork" binding:"required"`
	Remarks     string   `json:"remarks"`
}

// UpdateTimesheetRequest defines the fields an employee may overwrite.
// Status is deliberately absent; only the review operation moves it.
type UpdateTimesheetRequest struct {
	PlannedWork string `json:"plannedWork" binding:"required"`
	ActualWork  string `json:"actualWork" binding:"required"`
	Remarks     string `json:"remarks"`
}

// ReviewTimesheetRequest defines the admin review payload. Any target
// status is accepted, including a reset back to pending.
type ReviewTimesheetRequest struct {
	Status        string `json:"status" binding:"required,tsstatus"`
	AdminComments string `json:"adminComments"`
}

// ListTimesheetsParams defines the query parameters recognised by the
// list and export endpoints. Employee and Search are honoured only on
// the admin tier.
type ListTimesheetsParams struct {
	Status   string `form:"status"`
	From     string `form:"from"`
	To       string `form:"to"`
	Date     string `form:"date"`
	Month    string `form:"month"`
	Employee string `form:"employee"`
	Search   string `form:"search"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// ToFilter translates the bound parameters into a domain filter.
// Invalid date parameters surface as an error so the handler can 400.
func (p ListTimesheetsParams) ToFilter() (domain.TimesheetFilter, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return domain.TimesheetFilter{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return domain.TimesheetFilter{}, err
	}
	date, err := ParseDate(p.Date)
	if err != nil {
		return domain.TimesheetFilter{}, err
	}

	return domain.TimesheetFilter{
		UserID: p.Employee,
		Status: domain.TimesheetStatus(p.Status),
		From:   from,
		To:     to,
		Date:   date,
		Month:  p.Month,
		Search: p.Search,
		Limit:  p.Limit,
		Offset: p.Offset,
	}, nil
}

// TimesheetResponse is the public representation of a timesheet entry.
type TimesheetResponse struct {
	TimesheetID   string   `json:"timesheetID"`
	UserID        string   `json:"userID"`
	EmployeeName  string   `json:"employeeName"`
	Date          DateOnly `json:"date"`
	PlannedWork   string   `json:"plannedWork"`
	ActualWork    string   `json:"actualWork"`
	Remarks       string   `json:"remarks,omitempty"`
	Status        string   `json:"status"`
	AdminComments string   `json:"adminComments,omitempty"`
	ReviewerID    string   `json:"reviewerID,omitempty"`
	ReviewedAt    string   `json:"reviewedAt,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	LastUpdatedAt string   `json:"lastUpdatedAt"`
}

// ToTimesheetResponse converts a domain.Timesheet to its public representation.
func ToTimesheetResponse(t *domain.Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		TimesheetID:   t.TimesheetID,
		UserID:        t.UserID,
		EmployeeName:  t.EmployeeName,
		Date:          DateOnly{t.WorkDate},
		PlannedWork:   t.PlannedWork,
		ActualWork:    t.ActualWork,
		Remarks:       t.Remarks,
		Status:        string(t.Status),
		AdminComments: t.AdminComments,
		CreatedAt:     t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		LastUpdatedAt: t.LastUpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if t.ReviewerID != nil {
		resp.ReviewerID = *t.ReviewerID
	}
	if t.ReviewedAt != nil {
		resp.ReviewedAt = t.ReviewedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return resp
}

// ListTimesheetsResponse wraps the list of entries.
type ListTimesheetsResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
}

// ToListTimesheetsResponse converts a slice of domain.Timesheet to the list DTO.
func ToListTimesheetsResponse(ts []domain.Timesheet) ListTimesheetsResponse {
	responses := make([]TimesheetResponse, len(ts))
	for i := range ts {
		responses[i] = ToTimesheetResponse(&ts[i])
	}
	return ListTimesheetsResponse{Timesheets: responses}
}
