package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	// ErrValidation marks a malformed or missing required parameter.
	// The boundary maps it to HTTP 422.
	ErrValidation = errors.New("validation failed")
)

// NewKind tags a sentinel kind with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// Wrap tags an arbitrary error with the operation that observed it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind tags an error with both an operation and a sentinel kind so
// callers can errors.Is against the kind.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
