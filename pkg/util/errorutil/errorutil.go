package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/ticket-triage/internal/domain"
)

// DomainError standardizes application errors for the HTTP boundary.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError maps the service error taxonomy onto wire codes and HTTP
// statuses. Storage errors stay opaque to clients; the cause is preserved for
// logging via Unwrap.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return NewDomainError("INVALID_CREDENTIALS", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		return NewDomainError("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidCategory):
		return NewDomainError("INVALID_CATEGORY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrTextTooShort):
		return NewDomainError("TEXT_TOO_SHORT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoChangesRequested):
		return NewDomainError("NO_CHANGES_REQUESTED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrTicketNotFound):
		return NewDomainError("TICKET_NOT_FOUND", err.Error(), http.StatusNotFound)
	case domain.IsStorage(err):
		return &DomainError{
			Code:       "STORAGE_ERROR",
			Message:    "storage failure",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}

	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
