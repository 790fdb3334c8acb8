package events

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketUpdated EventType = "ticket_updated"
	EventTicketDeleted EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type           EventType   `json:"type"`
	TicketID       int64       `json:"ticket_id"`
	ActorAccountID int64       `json:"actor_account_id"`
	Payload        interface{} `json:"payload,omitempty"`
}

// TicketCreatedPayload accompanies EventTicketCreated.
type TicketCreatedPayload struct {
	CategoryID   int64  `json:"category_id"`
	StatusID     int64  `json:"status_id"`
	BriefSummary string `json:"brief_summary"`
}

// TicketUpdatedPayload accompanies EventTicketUpdated. Nil fields were left
// untouched by the update.
type TicketUpdatedPayload struct {
	AssignedAccountID *int64 `json:"assigned_account_id,omitempty"`
	CategoryID        *int64 `json:"category_id,omitempty"`
	StatusID          *int64 `json:"status_id,omitempty"`
}
