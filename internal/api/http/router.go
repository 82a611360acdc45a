package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/intervention-desk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Directory *handlers.DirectoryHandler
	Tickets   *handlers.TicketsHandler
	Reports   *handlers.ReportsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Get("/directory", cfg.Directory.ListPeople)
	app.Get("/directory/:id", cfg.Directory.GetPerson)

	app.Post("/tickets", cfg.Tickets.CreateTicket)
	app.Get("/tickets", cfg.Tickets.ListTickets)

	reports := app.Group("/reports")
	reports.Get("/overview", cfg.Reports.Overview)
	reports.Get("/weekly", cfg.Reports.Weekly)
}
