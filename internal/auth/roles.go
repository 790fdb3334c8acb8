package auth

import "github.com/spec-kit/ticket-triage/internal/domain"

// RequireRole gates an operation on the session's resolved role.
func RequireRole(session domain.Session, role string) error {
	if session.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin is the gate for all administrative ticket operations.
func RequireAdmin(session domain.Session) error {
	return RequireRole(session, domain.RoleAdmin)
}
