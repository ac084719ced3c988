package domain

import "time"

// UserRole distinguishes the two capability tiers of the application.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// User represents an employee or administrator account in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Department   string   `json:"department"`
	EmployeeID   string   `json:"employeeID"` // Badge/payroll number, distinct from UserID
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsAdmin reports whether the user holds the admin capability tier.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Getter methods used by dto response mapping.

func (u User) GetUserID() string     { return u.UserID }
func (u User) GetUsername() string   { return u.Username }
func (u User) GetName() string       { return u.Name }
func (u User) GetEmail() string      { return u.Email }
func (u User) GetDepartment() string { return u.Department }
func (u User) GetEmployeeID() string { return u.EmployeeID }
func (u User) GetRole() UserRole     { return u.Role }
