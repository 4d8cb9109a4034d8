package model

import "time"

// Role represents the role of a user in the portal.
type Role string

const (
	// RoleAdmin has full access to the administrative dashboards.
	RoleAdmin Role = "admin"
	// RoleUser is a standard authenticated user (student portal).
	RoleUser Role = "user"
	// RoleModerator can manage FAQ and query content but not users.
	RoleModerator Role = "moderator"
)

// User represents a portal user account as returned by the backend.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	Role           Role       `json:"role"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
