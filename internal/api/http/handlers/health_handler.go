package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-triage/internal/persistence"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	pg *persistence.Postgres
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(pg *persistence.Postgres) *HealthHandler {
	return &HealthHandler{pg: pg}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.pg == nil || h.pg.Pool == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "no database"})
	}
	if err := h.pg.Pool.Ping(c.Context()); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "database unreachable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
