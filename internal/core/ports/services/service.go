package services

// ServiceContainer aggregates the service facades handed to the handlers.
type ServiceContainer struct {
	User      UserSvcFacade
	Timesheet TimesheetSvcFacade
	Exporter  TimesheetExporter
}
