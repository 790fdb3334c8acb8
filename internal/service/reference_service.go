package service

import (
	"context"

	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/domain"
	"github.com/spec-kit/ticket-triage/internal/repository"
)

// ReferenceService exposes the lookup tables with per-operation
// authorization. Returned sequences contain database rows only; placeholder
// entries are a caller-side concern.
type ReferenceService struct {
	references repository.ReferenceRepository
}

// NewReferenceService constructs the service.
func NewReferenceService(references repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{references: references}
}

// ListCategories is available to any authenticated account; it backs the
// ticket creation picker.
func (s *ReferenceService) ListCategories(ctx context.Context, session domain.Session) ([]domain.Category, error) {
	return s.references.ListCategories(ctx)
}

// ListStatuses backs the management views and requires Admin.
func (s *ReferenceService) ListStatuses(ctx context.Context, session domain.Session) ([]domain.TicketStatus, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}
	return s.references.ListStatuses(ctx)
}

// ListAdmins backs assignment and filter pickers and requires Admin.
func (s *ReferenceService) ListAdmins(ctx context.Context, session domain.Session) ([]domain.AdminAccount, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}
	return s.references.ListAdmins(ctx)
}
