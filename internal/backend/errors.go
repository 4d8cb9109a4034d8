package backend

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx backend response.
type HTTPError struct {
	Category   string // "API", "Upload", ...
	StatusCode int
	Body       string
}

// Error implements the error interface.
// The format matches what the dashboards display verbatim.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s Error: %d - %s", e.Category, e.StatusCode, e.Body)
}

// AuthError is a failed credential or federated-token exchange.
// Detail carries the backend's message when available.
type AuthError struct {
	Detail string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return e.Detail
}

// IsAuthError reports whether err is an authentication failure,
// as opposed to a transport or server error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
