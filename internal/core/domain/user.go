package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles an account can hold. Roles are assigned at
// creation time and never change afterwards; the only way to obtain an admin
// account is through the admin-creation flow.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// MinPasswordLength is enforced before any hashing happens.
const MinPasswordLength = 8

// User models an account in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity performing an action.
type Actor struct {
	ID   string
	Role Role
}
