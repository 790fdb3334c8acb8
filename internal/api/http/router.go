package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-triage/internal/api/http/handlers"
	"github.com/spec-kit/ticket-triage/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Reference      *handlers.ReferenceHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Role-based authorization lives in the
// services; the router only separates authenticated from public paths.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/categories", cfg.Reference.Categories)
	protected.Get("/statuses", cfg.Reference.Statuses)
	protected.Get("/admins", cfg.Reference.Admins)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
	protected.Get("/tickets/:id/description", cfg.Tickets.GetDescription)
	protected.Patch("/tickets/:id", cfg.Tickets.Update)
	protected.Delete("/tickets/:id", cfg.Tickets.Delete)
}
