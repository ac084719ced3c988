package repositories

// RepositoryProvider aggregates the repository facades handed to the
// service container.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	TimesheetRepo TimesheetRepositoryFacade
}
