package dto

import (
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// CreateEmployeeRequest defines the data an admin supplies to create an account.
type CreateEmployeeRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeID"`
	Role       string `json:"role" binding:"omitempty,oneof=employee admin"`
}

// UpdateEmployeeRequest defines the data allowed for updating an account.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	EmployeeID *string `json:"employeeID"`
	IsActive   *bool   `json:"isActive"`
}

// ListEmployeesParams defines query parameters for listing accounts.
type ListEmployeesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the public representation of an account.
type UserResponse struct {
	UserID     string `json:"userID"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeID"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Name:       user.Name,
		Email:      user.Email,
		Department: user.Department,
		EmployeeID: user.EmployeeID,
		Role:       string(user.Role),
		IsActive:   user.IsActive,
	}
}

// ListEmployeesResponse wraps the list of accounts.
type ListEmployeesResponse struct {
	Employees []UserResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.User to the list DTO.
func ToListEmployeesResponse(users []domain.User) ListEmployeesResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
