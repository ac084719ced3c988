package services

import (
	portsrepo "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/repositories"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.UserRepo)
	container.Exporter = NewExportService()

	return container
}
