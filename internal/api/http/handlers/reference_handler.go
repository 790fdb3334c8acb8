package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-triage/internal/api/dto"
	"github.com/spec-kit/ticket-triage/internal/auth"
	"github.com/spec-kit/ticket-triage/internal/service"
	"github.com/spec-kit/ticket-triage/pkg/util/errorutil"
)

// ReferenceHandler serves the lookup tables backing pickers.
type ReferenceHandler struct {
	service *service.ReferenceService
}

// NewReferenceHandler constructs the handler.
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: referenceService}
}

// Categories GET /categories.
func (h *ReferenceHandler) Categories(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	categories, err := h.service.ListCategories(c.Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CategoriesFromDomain(categories)})
}

// Statuses GET /statuses.
func (h *ReferenceHandler) Statuses(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	statuses, err := h.service.ListStatuses(c.Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatusesFromDomain(statuses)})
}

// Admins GET /admins.
func (h *ReferenceHandler) Admins(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("session required")
	}
	admins, err := h.service.ListAdmins(c.Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AdminsFromDomain(admins)})
}
