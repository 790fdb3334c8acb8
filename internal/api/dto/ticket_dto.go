package dto

import "github.com/spec-kit/ticket-triage/internal/domain"

// CreateTicketRequest payload. CategoryID uses the legacy picker encoding:
// -1 means nothing selected.
type CreateTicketRequest struct {
	CategoryID          int64  `json:"category_id"`
	BriefSummary        string `json:"brief_summary"`
	DetailedDescription string `json:"detailed_description"`
}

// CreateTicketResponse returns the generated id.
type CreateTicketResponse struct {
	TicketID int64 `json:"ticket_id"`
}

// UpdateTicketRequest payload. Each field is independently optional; an
// absent field and the legacy -1 sentinel both mean "no change".
type UpdateTicketRequest struct {
	AssignedAccountID *int64 `json:"assigned_account_id"`
	CategoryID        *int64 `json:"category_id"`
	StatusID          *int64 `json:"status_id"`
}

// Update decodes the wire encoding into the service's optional form.
func (r UpdateTicketRequest) Update() domain.TicketUpdate {
	return domain.TicketUpdate{
		AssignedAccountID: optionalFromWire(r.AssignedAccountID),
		CategoryID:        optionalFromWire(r.CategoryID),
		StatusID:          optionalFromWire(r.StatusID),
	}
}

func optionalFromWire(raw *int64) *int64 {
	if raw == nil {
		return nil
	}
	return domain.OptionalID(*raw)
}

// TicketViewResponse mirrors the administrative grid projection.
type TicketViewResponse struct {
	TicketID      int64   `json:"ticket_id"`
	Status        string  `json:"status"`
	AssignedAdmin *string `json:"assigned_admin"`
	Category      string  `json:"category"`
	BriefSummary  string  `json:"brief_summary"`
	Creator       string  `json:"creator"`
	CreatorRole   string  `json:"creator_role"`
}

// TicketViewFromDomain maps the projection for the wire.
func TicketViewFromDomain(view domain.TicketView) TicketViewResponse {
	return TicketViewResponse{
		TicketID:      view.TicketID,
		Status:        view.Status,
		AssignedAdmin: view.AssignedAdmin,
		Category:      view.Category,
		BriefSummary:  view.BriefSummary,
		Creator:       view.Creator,
		CreatorRole:   view.CreatorRole,
	}
}

// TicketDescriptionResponse carries the detailed description.
type TicketDescriptionResponse struct {
	TicketID            int64  `json:"ticket_id"`
	DetailedDescription string `json:"detailed_description"`
}
