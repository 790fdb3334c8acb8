package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-triage/internal/domain"
	"github.com/spec-kit/ticket-triage/internal/events"
)

type memoryReferenceRepo struct {
	categories []domain.Category
	statuses   []domain.TicketStatus
	admins     []domain.AdminAccount
	openID     int64
}

func (r *memoryReferenceRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), r.categories...), nil
}

func (r *memoryReferenceRepo) ListStatuses(ctx context.Context) ([]domain.TicketStatus, error) {
	return append([]domain.TicketStatus(nil), r.statuses...), nil
}

func (r *memoryReferenceRepo) ListAdmins(ctx context.Context) ([]domain.AdminAccount, error) {
	return append([]domain.AdminAccount(nil), r.admins...), nil
}

func (r *memoryReferenceRepo) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryReferenceRepo) OpenStatusID(ctx context.Context) (int64, error) {
	return r.openID, nil
}

type memoryTicketRepo struct {
	tickets      map[int64]domain.Ticket
	nextID       int64
	writes       int
	statusNames  map[int64]string
	categoryName map[int64]string
	accountName  map[int64]string
	accountRole  map[int64]string
}

func newMemoryTicketRepo() *memoryTicketRepo {
	return &memoryTicketRepo{
		tickets:      make(map[int64]domain.Ticket),
		nextID:       1,
		statusNames:  map[int64]string{1: "Open", 2: "In Progress", 3: "Closed"},
		categoryName: map[int64]string{1: "Hardware", 2: "Software", 3: "Network"},
		accountName:  map[int64]string{4: "alice", 10: "root", 12: "morgan"},
		accountRole:  map[int64]string{4: domain.RoleTeacher, 10: domain.RoleAdmin, 12: domain.RoleAdmin},
	}
}

func (r *memoryTicketRepo) List(ctx context.Context, filter domain.TicketFilter) ([]domain.TicketView, error) {
	var result []domain.TicketView
	for id := int64(1); id < r.nextID; id++ {
		ticket, ok := r.tickets[id]
		if !ok {
			continue
		}
		switch filter.Kind {
		case domain.FilterByAssignee:
			if ticket.AssignedAccountID == nil || *ticket.AssignedAccountID != filter.AssigneeID {
				continue
			}
		case domain.FilterUnassigned:
			if ticket.AssignedAccountID != nil {
				continue
			}
		}
		view := domain.TicketView{
			TicketID:     ticket.ID,
			Status:       r.statusNames[ticket.StatusID],
			Category:     r.categoryName[ticket.CategoryID],
			BriefSummary: ticket.BriefSummary,
			Creator:      r.accountName[ticket.CreatorAccountID],
			CreatorRole:  r.accountRole[ticket.CreatorAccountID],
		}
		if ticket.AssignedAccountID != nil {
			name := r.accountName[*ticket.AssignedAccountID]
			view.AssignedAdmin = &name
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *memoryTicketRepo) GetDetail(ctx context.Context, ticketID int64) (*domain.TicketDetail, error) {
	ticket, ok := r.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &domain.TicketDetail{
		TicketID:            ticket.ID,
		CreatorAccountID:    ticket.CreatorAccountID,
		DetailedDescription: ticket.DetailedDescription,
	}, nil
}

func (r *memoryTicketRepo) Insert(ctx context.Context, ticket *domain.Ticket) (int64, error) {
	r.writes++
	ticket.ID = r.nextID
	ticket.CreatedAt = time.Now()
	r.nextID++
	r.tickets[ticket.ID] = *ticket
	return ticket.ID, nil
}

func (r *memoryTicketRepo) UpdateFields(ctx context.Context, ticketID int64, update domain.TicketUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	r.writes++
	ticket, ok := r.tickets[ticketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	if update.AssignedAccountID != nil {
		assignee := *update.AssignedAccountID
		ticket.AssignedAccountID = &assignee
	}
	if update.CategoryID != nil {
		ticket.CategoryID = *update.CategoryID
	}
	if update.StatusID != nil {
		ticket.StatusID = *update.StatusID
	}
	r.tickets[ticketID] = ticket
	return nil
}

func (r *memoryTicketRepo) Delete(ctx context.Context, ticketID int64) error {
	r.writes++
	if _, ok := r.tickets[ticketID]; !ok {
		return domain.ErrTicketNotFound
	}
	delete(r.tickets, ticketID)
	return nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

type fixture struct {
	service    *TicketService
	tickets    *memoryTicketRepo
	references *memoryReferenceRepo
	dispatcher *capturingDispatcher
}

var (
	adminSession   = domain.Session{AccountID: 10, Username: "root", Role: domain.RoleAdmin}
	teacherSession = domain.Session{AccountID: 4, Username: "alice", Role: domain.RoleTeacher}
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	references := &memoryReferenceRepo{
		categories: []domain.Category{{ID: 1, Name: "Hardware"}, {ID: 2, Name: "Software"}, {ID: 3, Name: "Network"}},
		statuses:   []domain.TicketStatus{{ID: 1, Name: "Open"}, {ID: 2, Name: "In Progress"}, {ID: 3, Name: "Closed"}},
		admins:     []domain.AdminAccount{{ID: 10, Username: "root"}, {ID: 12, Username: "morgan"}},
		openID:     1,
	}
	tickets := newMemoryTicketRepo()
	dispatcher := &capturingDispatcher{}

	svc, err := NewTicketService(context.Background(), TicketDependencies{
		TicketRepo:    tickets,
		ReferenceRepo: references,
		Dispatcher:    dispatcher,
	})
	require.NoError(t, err)
	return &fixture{service: svc, tickets: tickets, references: references, dispatcher: dispatcher}
}

func (f *fixture) seedTicket(t *testing.T, creator int64, assignee *int64, categoryID, statusID int64) int64 {
	t.Helper()
	id, err := f.tickets.Insert(context.Background(), &domain.Ticket{
		CreatorAccountID:    creator,
		AssignedAccountID:   assignee,
		CategoryID:          categoryID,
		StatusID:            statusID,
		BriefSummary:        "seeded summary",
		DetailedDescription: "seeded detailed description",
	})
	require.NoError(t, err)
	f.tickets.writes = 0
	return id
}

func TestCreateTicketSetsOpenStatusAndCreator(t *testing.T) {
	f := newFixture(t)
	categoryID := int64(3)

	ticketID, err := f.service.CreateTicket(context.Background(), teacherSession,
		&categoryID, "Printer broken", "The printer on floor 2 jams every print job")
	require.NoError(t, err)
	require.Positive(t, ticketID)

	stored := f.tickets.tickets[ticketID]
	require.Equal(t, int64(1), stored.StatusID)
	require.Equal(t, teacherSession.AccountID, stored.CreatorAccountID)
	require.Equal(t, categoryID, stored.CategoryID)
	require.Nil(t, stored.AssignedAccountID)

	require.Len(t, f.dispatcher.published, 1)
	require.Equal(t, events.EventTicketCreated, f.dispatcher.published[0].Type)
}

func TestCreateTicketTextTooShort(t *testing.T) {
	f := newFixture(t)
	categoryID := int64(1)

	cases := []struct {
		name                 string
		summary, description string
	}{
		{"short summary", "short", "a sufficiently long description"},
		{"short description", "a sufficiently long summary", "short"},
		{"both short", "nope", "nah"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.CreateTicket(context.Background(), teacherSession, &categoryID, tc.summary, tc.description)
			require.ErrorIs(t, err, domain.ErrTextTooShort)
		})
	}
	require.Zero(t, f.tickets.writes)
}

func TestCreateTicketNoCategorySelected(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateTicket(context.Background(), teacherSession,
		domain.OptionalID(domain.NoSelectionValue), "Printer broken", "The printer on floor 2 jams every print job")
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
	require.Zero(t, f.tickets.writes)
}

func TestCreateTicketUnknownCategory(t *testing.T) {
	f := newFixture(t)
	categoryID := int64(99)

	_, err := f.service.CreateTicket(context.Background(), teacherSession,
		&categoryID, "Printer broken", "The printer on floor 2 jams every print job")
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
	require.Zero(t, f.tickets.writes)
}

func TestUpdateTicketNoChangesRequested(t *testing.T) {
	f := newFixture(t)
	ticketID := f.seedTicket(t, 4, nil, 1, 1)

	err := f.service.UpdateTicket(context.Background(), adminSession, ticketID, domain.TicketUpdate{})
	require.ErrorIs(t, err, domain.ErrNoChangesRequested)
	require.Zero(t, f.tickets.writes)
	require.Empty(t, f.dispatcher.published)
}

func TestUpdateTicketSingleFieldLeavesOthersUntouched(t *testing.T) {
	f := newFixture(t)
	var ticketID int64
	for i := 0; i < 7; i++ {
		ticketID = f.seedTicket(t, 4, nil, 2, 1)
	}
	require.Equal(t, int64(7), ticketID)
	before := f.tickets.tickets[ticketID]

	assignee := int64(12)
	err := f.service.UpdateTicket(context.Background(), adminSession, ticketID, domain.TicketUpdate{
		AssignedAccountID: &assignee,
	})
	require.NoError(t, err)

	after := f.tickets.tickets[ticketID]
	require.NotNil(t, after.AssignedAccountID)
	require.Equal(t, assignee, *after.AssignedAccountID)
	require.Equal(t, before.CategoryID, after.CategoryID)
	require.Equal(t, before.StatusID, after.StatusID)
	require.Equal(t, before.BriefSummary, after.BriefSummary)
	require.Equal(t, before.CreatorAccountID, after.CreatorAccountID)
}

func TestUpdateTicketNotFound(t *testing.T) {
	f := newFixture(t)
	status := int64(3)

	err := f.service.UpdateTicket(context.Background(), adminSession, 42, domain.TicketUpdate{StatusID: &status})
	require.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestListTicketsFilterSemantics(t *testing.T) {
	f := newFixture(t)
	rootID := int64(10)
	assignedToRoot := f.seedTicket(t, 4, &rootID, 1, 1)
	morganID := int64(12)
	assignedToMorgan := f.seedTicket(t, 4, &morganID, 2, 2)
	unassigned := f.seedTicket(t, 4, nil, 3, 1)

	all, err := f.service.ListTickets(context.Background(), adminSession, domain.AllTickets())
	require.NoError(t, err)
	require.Len(t, all, 3)

	unassignedOnly, err := f.service.ListTickets(context.Background(), adminSession, domain.UnassignedTickets())
	require.NoError(t, err)
	require.Len(t, unassignedOnly, 1)
	require.Equal(t, unassigned, unassignedOnly[0].TicketID)
	require.Nil(t, unassignedOnly[0].AssignedAdmin)

	byRoot, err := f.service.ListTickets(context.Background(), adminSession, domain.TicketsAssignedTo(rootID))
	require.NoError(t, err)
	require.Len(t, byRoot, 1)
	require.Equal(t, assignedToRoot, byRoot[0].TicketID)

	byMorgan, err := f.service.ListTickets(context.Background(), adminSession, domain.TicketsAssignedTo(morganID))
	require.NoError(t, err)
	require.Len(t, byMorgan, 1)
	require.Equal(t, assignedToMorgan, byMorgan[0].TicketID)
	require.NotNil(t, byMorgan[0].AssignedAdmin)
	require.Equal(t, "morgan", *byMorgan[0].AssignedAdmin)
}

func TestNonAdminOperationsForbidden(t *testing.T) {
	f := newFixture(t)
	ticketID := f.seedTicket(t, 10, nil, 1, 1)
	status := int64(3)

	_, err := f.service.ListTickets(context.Background(), teacherSession, domain.AllTickets())
	require.ErrorIs(t, err, domain.ErrForbidden)

	err = f.service.UpdateTicket(context.Background(), teacherSession, ticketID, domain.TicketUpdate{StatusID: &status})
	require.ErrorIs(t, err, domain.ErrForbidden)

	err = f.service.DeleteTicket(context.Background(), teacherSession, ticketID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	require.Zero(t, f.tickets.writes)
	require.Empty(t, f.dispatcher.published)
}

func TestDeleteTicket(t *testing.T) {
	f := newFixture(t)
	ticketID := f.seedTicket(t, 4, nil, 1, 1)

	require.NoError(t, f.service.DeleteTicket(context.Background(), adminSession, ticketID))
	require.NotContains(t, f.tickets.tickets, ticketID)

	err := f.service.DeleteTicket(context.Background(), adminSession, ticketID)
	require.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestGetDetailAuthorization(t *testing.T) {
	f := newFixture(t)
	ticketID := f.seedTicket(t, teacherSession.AccountID, nil, 1, 1)

	description, err := f.service.GetDetail(context.Background(), adminSession, ticketID)
	require.NoError(t, err)
	require.Equal(t, "seeded detailed description", description)

	description, err = f.service.GetDetail(context.Background(), teacherSession, ticketID)
	require.NoError(t, err)
	require.Equal(t, "seeded detailed description", description)

	otherSession := domain.Session{AccountID: 99, Username: "sam", Role: domain.RoleStudent}
	_, err = f.service.GetDetail(context.Background(), otherSession, ticketID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.service.GetDetail(context.Background(), adminSession, 4242)
	require.ErrorIs(t, err, domain.ErrTicketNotFound)
}
