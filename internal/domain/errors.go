package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the orchestration boundary
var (
	// ErrUnauthorized is returned when an action requires an
	// authenticated session and none is bound
	ErrUnauthorized = errors.New("not authenticated")

	// ErrInvalidAmount is returned for non-positive trade amounts
	ErrInvalidAmount = errors.New("trade amount must be positive")

	// ErrInvalidSide is returned for a trade side outside {BUY, SELL}
	ErrInvalidSide = errors.New("invalid trade side")

	// ErrUnsupportedAsset is returned for symbols outside the supported set
	ErrUnsupportedAsset = errors.New("unsupported asset symbol")

	// ErrNotFound is returned on a credential lookup miss
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned by registration when username
	// uniqueness is enforced and the name already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentialInput is returned by registration for empty
	// username or password when strict validation is enabled
	ErrInvalidCredentialInput = errors.New("username and password are required")

	// ErrUpstreamUnavailable is returned when a market data or
	// forecast collaborator fails or has no data for a symbol
	ErrUpstreamUnavailable = errors.New("upstream data unavailable")
)

// StorageError wraps a persistence-layer failure so callers can tell
// I/O faults apart from validation rejections
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the failing operation name
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is (or wraps) a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
