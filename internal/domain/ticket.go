package domain

import "time"

// Ticket is the aggregate for support requests. CreatorAccountID is immutable
// after creation; AssignedAccountID nil means unassigned.
type Ticket struct {
	ID                  int64
	CreatorAccountID    int64
	AssignedAccountID   *int64
	CategoryID          int64
	StatusID            int64
	BriefSummary        string
	DetailedDescription string
	CreatedAt           time.Time
}

// TicketView is the read-only joined projection used for listing: foreign
// keys are replaced with human-readable names.
type TicketView struct {
	TicketID      int64
	Status        string
	AssignedAdmin *string
	Category      string
	BriefSummary  string
	Creator       string
	CreatorRole   string
}

// TicketDetail carries the full description together with the creator id so
// callers can decide access without a second round trip.
type TicketDetail struct {
	TicketID            int64
	CreatorAccountID    int64
	DetailedDescription string
}

// TicketFilterKind selects the listing scope.
type TicketFilterKind int

const (
	FilterAll TicketFilterKind = iota
	FilterByAssignee
	FilterUnassigned
)

// TicketFilter restricts listings by assignment. ByAssignee and Unassigned
// are mutually exclusive by construction.
type TicketFilter struct {
	Kind       TicketFilterKind
	AssigneeID int64
}

// AllTickets places no restriction on the listing.
func AllTickets() TicketFilter {
	return TicketFilter{Kind: FilterAll}
}

// TicketsAssignedTo restricts to tickets assigned to the given account.
func TicketsAssignedTo(accountID int64) TicketFilter {
	return TicketFilter{Kind: FilterByAssignee, AssigneeID: accountID}
}

// UnassignedTickets restricts to tickets with no assignee.
func UnassignedTickets() TicketFilter {
	return TicketFilter{Kind: FilterUnassigned}
}

// TicketUpdate describes a partial update. Nil fields are left untouched.
type TicketUpdate struct {
	AssignedAccountID *int64
	CategoryID        *int64
	StatusID          *int64
}

// IsEmpty reports whether the update would change nothing.
func (u TicketUpdate) IsEmpty() bool {
	return u.AssignedAccountID == nil && u.CategoryID == nil && u.StatusID == nil
}
