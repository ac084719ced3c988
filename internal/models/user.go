package models

import "time"

// User is the database representation of an employee or admin account.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Department   string `db:"department"`
	EmployeeID   string `db:"employee_id"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
