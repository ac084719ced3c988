package services

import (
	"context"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
)

// UserReaderSvc defines read operations for account data.
type UserReaderSvc interface {
	// GetUserByID retrieves an account by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves an account by login name.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListEmployees retrieves a paginated list of accounts.
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for account data.
type UserWriterSvc interface {
	// CreateEmployee creates a new account (admin action).
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.User, error)

	// UpdateEmployee updates an existing account.
	UpdateEmployee(ctx context.Context, userID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for removing accounts.
type UserLifecycleSvc interface {
	// DeleteEmployee soft-deletes the account and cascade-deletes its
	// timesheets in one unit of work.
	DeleteEmployee(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies the credentials of an active account.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all account service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
