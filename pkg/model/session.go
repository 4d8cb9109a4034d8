package model

import "time"

// Session represents an authenticated portal session.
// The backend bearer token is carried server-side only and never
// exposed through JSON.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Token     string    `json:"-"` // backend bearer token (not exposed via JSON)
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Session) IsAdmin() bool {
	return s.User.Role == RoleAdmin
}

// IsModerator reports whether the session belongs to a moderator.
func (s *Session) IsModerator() bool {
	return s.User.Role == RoleModerator
}
