package service

import (
	"context"

	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/domain"
	"github.com/spec-kit/ticket-triage/internal/events"
	"github.com/spec-kit/ticket-triage/internal/repository"
)

// DefaultMinTextLength is the floor for summary and description lengths when
// configuration does not override it.
const DefaultMinTextLength = 8

// TicketService enforces business rules above raw ticket storage.
type TicketService struct {
	tickets       repository.TicketRepository
	references    repository.ReferenceRepository
	dispatcher    events.Dispatcher
	openStatusID  int64
	minTextLength int
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo    repository.TicketRepository
	ReferenceRepo repository.ReferenceRepository
	Dispatcher    events.Dispatcher
	MinTextLength int
}

// NewTicketService constructs the service. The distinguished "Open" status id
// is resolved once here and cached for the lifetime of the service.
func NewTicketService(ctx context.Context, deps TicketDependencies) (*TicketService, error) {
	openID, err := deps.ReferenceRepo.OpenStatusID(ctx)
	if err != nil {
		return nil, err
	}
	minLen := deps.MinTextLength
	if minLen <= 0 {
		minLen = DefaultMinTextLength
	}
	return &TicketService{
		tickets:       deps.TicketRepo,
		references:    deps.ReferenceRepo,
		dispatcher:    deps.Dispatcher,
		openStatusID:  openID,
		minTextLength: minLen,
	}, nil
}

// CreateTicket submits a new ticket for the session's account. The ticket
// always starts in the cached "Open" status and the creator is taken from the
// session, never from caller input.
func (s *TicketService) CreateTicket(ctx context.Context, session domain.Session, categoryID *int64, summary, description string) (int64, error) {
	if categoryID == nil {
		return 0, domain.ErrInvalidCategory
	}
	category, err := s.references.GetCategory(ctx, *categoryID)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, domain.ErrInvalidCategory
	}
	if len(summary) < s.minTextLength || len(description) < s.minTextLength {
		return 0, domain.ErrTextTooShort
	}

	ticket := &domain.Ticket{
		CreatorAccountID:    session.AccountID,
		CategoryID:          *categoryID,
		StatusID:            s.openStatusID,
		BriefSummary:        summary,
		DetailedDescription: description,
	}
	ticketID, err := s.tickets.Insert(ctx, ticket)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.Event{
		Type:           events.EventTicketCreated,
		TicketID:       ticketID,
		ActorAccountID: session.AccountID,
		Payload: events.TicketCreatedPayload{
			CategoryID:   ticket.CategoryID,
			StatusID:     ticket.StatusID,
			BriefSummary: ticket.BriefSummary,
		},
	})
	return ticketID, nil
}

// ListTickets returns the joined ticket projection for administrative views.
func (s *TicketService) ListTickets(ctx context.Context, session domain.Session, filter domain.TicketFilter) ([]domain.TicketView, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}
	return s.tickets.List(ctx, filter)
}

// UpdateTicket applies a partial update to assignment, category and status.
// An update with no fields selected is rejected before any storage call.
func (s *TicketService) UpdateTicket(ctx context.Context, session domain.Session, ticketID int64, update domain.TicketUpdate) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}
	if update.IsEmpty() {
		return domain.ErrNoChangesRequested
	}
	if err := s.tickets.UpdateFields(ctx, ticketID, update); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:           events.EventTicketUpdated,
		TicketID:       ticketID,
		ActorAccountID: session.AccountID,
		Payload: events.TicketUpdatedPayload{
			AssignedAccountID: update.AssignedAccountID,
			CategoryID:        update.CategoryID,
			StatusID:          update.StatusID,
		},
	})
	return nil
}

// DeleteTicket removes a ticket. Deleting an id that no longer exists reports
// ErrTicketNotFound; the operation is not idempotent.
func (s *TicketService) DeleteTicket(ctx context.Context, session domain.Session, ticketID int64) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:           events.EventTicketDeleted,
		TicketID:       ticketID,
		ActorAccountID: session.AccountID,
	})
	return nil
}

// GetDetail returns the detailed description. Only an admin or the ticket's
// creator may read it; the creator check needs the row, so this is the one
// authorization decision made after a storage read.
func (s *TicketService) GetDetail(ctx context.Context, session domain.Session, ticketID int64) (string, error) {
	detail, err := s.tickets.GetDetail(ctx, ticketID)
	if err != nil {
		return "", err
	}
	if !session.IsAdmin() && detail.CreatorAccountID != session.AccountID {
		return "", domain.ErrForbidden
	}
	return detail.DetailedDescription, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
