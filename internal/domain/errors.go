package domain

import (
	"errors"
	"fmt"
)

// Tagged errors returned by the service layer. Validation and authorization
// failures are detected before any storage call.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("operation not permitted for this role")
	ErrInvalidCategory    = errors.New("category not selected or unknown")
	ErrTextTooShort       = errors.New("summary or description below minimum length")
	ErrNoChangesRequested = errors.New("no fields selected for update")
	ErrTicketNotFound     = errors.New("ticket not found")
)

// StorageError wraps an underlying database failure. The cause is preserved
// verbatim; nothing retries or degrades on storage errors.
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

// WrapStorage tags a database error with the failing operation.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err originated in the persistence layer.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
