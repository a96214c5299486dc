package domain

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string
	Username     string // stored lowercase
	Email        string // stored lowercase
	PasswordHash string // bcrypt encoded
	Role         string // "user" or "admin"
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Author is the public slice of a user embedded in post responses.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public strips the credential fields for API responses.
func (u User) Public() Author {
	return Author{ID: u.ID, Username: u.Username, Role: u.Role}
}
