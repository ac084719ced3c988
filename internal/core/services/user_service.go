package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/apperrors"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portsrepo "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/repositories"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.User, error) {
	// Reject a taken username up front; the unique index still backstops
	// concurrent registrations.
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		EmployeeID:   req.EmployeeID,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateEmployee(ctx context.Context, userID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != user.Name {
		user.Name = *req.Name
		changed = true
	}
	if req.Email != nil && *req.Email != user.Email {
		user.Email = *req.Email
		changed = true
	}
	if req.Department != nil && *req.Department != user.Department {
		user.Department = *req.Department
		changed = true
	}
	if req.EmployeeID != nil && *req.EmployeeID != user.EmployeeID {
		user.EmployeeID = *req.EmployeeID
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		user.IsActive = *req.IsActive
		changed = true
	}

	if !changed {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteEmployee(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.DeleteUserWithTimesheets(ctx, userID, time.Now(), requestingUserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}
