package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-triage/internal/api/dto"
	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/domain"
	"github.com/spec-kit/ticket-triage/internal/service"
	"github.com/spec-kit/ticket-triage/pkg/util/errorutil"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload")
	}

	ticketID, err := h.service.CreateTicket(c.Context(), session,
		domain.OptionalID(req.CategoryID), req.BriefSummary, req.DetailedDescription)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CreateTicketResponse{TicketID: ticketID}})
}

// List GET /tickets?assignee=-1|0|<id>. The query parameter keeps the legacy
// selector encoding: -1 no filter, 0 unassigned only, otherwise an admin id.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	raw := c.Query("assignee", strconv.FormatInt(domain.NoSelectionValue, 10))
	selector, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errorutil.NewValidationError("invalid assignee selector")
	}

	views, err := h.service.ListTickets(c.Context(), session, domain.FilterFromSentinel(selector))
	if err != nil {
		return err
	}
	items := make([]dto.TicketViewResponse, 0, len(views))
	for _, view := range views {
		items = append(items, dto.TicketViewFromDomain(view))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetDescription GET /tickets/:id/description.
func (h *TicketsHandler) GetDescription(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}

	description, err := h.service.GetDetail(c.Context(), session, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketDescriptionResponse{
		TicketID:            ticketID,
		DetailedDescription: description,
	}})
}

// Update PATCH /tickets/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload")
	}

	if err := h.service.UpdateTicket(c.Context(), session, ticketID, req.Update()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"ticket_id": ticketID}})
}

// Delete DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTicket(c.Context(), session, ticketID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseTicketID(c *fiber.Ctx) (int64, error) {
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		return 0, errorutil.NewValidationError("invalid ticket id")
	}
	return ticketID, nil
}
