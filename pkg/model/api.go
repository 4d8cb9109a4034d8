package model

import "time"

// Response is the standard portal API response envelope.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Error codes used in portal API responses.
const (
	ErrBadRequest   = "bad_request"
	ErrUnauthorized = "unauthorized"
	ErrForbidden    = "forbidden"
	ErrUpstream     = "upstream_error"
	ErrInternal     = "internal_error"
)

// LoginResponse is the backend credential exchange payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterRequest is the backend registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// RegisterResponse is the backend registration result.
// Registration does not log the user in.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UploadResponse is the backend document upload result.
type UploadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DocumentPage is one page of the backend document listing.
type DocumentPage struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	Skip      int        `json:"skip"`
	Limit     int        `json:"limit"`
}

// QueryPage is one page of the backend query listing.
type QueryPage struct {
	Queries []Query `json:"queries"`
	Total   int     `json:"total"`
	Skip    int     `json:"skip"`
	Limit   int     `json:"limit"`
}

// UserPage is one page of the backend user listing.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}
