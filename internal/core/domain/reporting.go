package domain

// DashboardSummary holds the aggregate counts shown on the admin dashboard.
type DashboardSummary struct {
	TotalTimesheets    int64 `json:"totalTimesheets"`
	PendingTimesheets  int64 `json:"pendingTimesheets"`
	AcceptedTimesheets int64 `json:"acceptedTimesheets"`
	RejectedTimesheets int64 `json:"rejectedTimesheets"`
	TotalEmployees     int64 `json:"totalEmployees"`
}
