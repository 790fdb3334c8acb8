package dto

import "github.com/spec-kit/ticket-triage/internal/domain"

// CategoryResponse payload.
type CategoryResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// StatusResponse payload.
type StatusResponse struct {
	StatusID   int64  `json:"status_id"`
	StatusName string `json:"status_name"`
}

// AdminResponse payload.
type AdminResponse struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
}

// CategoriesFromDomain maps categories for the wire.
func CategoriesFromDomain(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryResponse{CategoryID: c.ID, CategoryName: c.Name})
	}
	return result
}

// StatusesFromDomain maps statuses for the wire.
func StatusesFromDomain(statuses []domain.TicketStatus) []StatusResponse {
	result := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, StatusResponse{StatusID: s.ID, StatusName: s.Name})
	}
	return result
}

// AdminsFromDomain maps admin accounts for the wire.
func AdminsFromDomain(admins []domain.AdminAccount) []AdminResponse {
	result := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		result = append(result, AdminResponse{AccountID: a.ID, Username: a.Username})
	}
	return result
}
