package repositories

import (
	"context"
	"time"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// UserReader defines read operations for account data.
type UserReader interface {
	// FindUserByID retrieves a specific account by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves an account by its login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a paginated list of accounts.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers returns the number of non-deleted accounts.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for account data.
type UserWriter interface {
	// SaveUser persists a new account.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing account's details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserLifecycleManager defines operations for removing accounts.
type UserLifecycleManager interface {
	// DeleteUserWithTimesheets soft-deletes the account and removes all of
	// its timesheets inside a single transaction.
	DeleteUserWithTimesheets(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all account repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
