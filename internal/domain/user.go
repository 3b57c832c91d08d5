package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the domain model for site accounts.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         Role
	PasswordHash string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
