package auth

import "errors"

// Sentinel kinds for authentication and authorization failures.
var (
	ErrUnauthenticated = errors.New("missing or invalid token")
	ErrForbidden       = errors.New("admin privileges required")
)
