package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/intervention-desk/internal/api/dto"
	"github.com/spec-kit/intervention-desk/internal/service"
)

// ReportsHandler exposes the aggregate reporting views.
type ReportsHandler struct {
	service *service.TicketService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(ticketService *service.TicketService) *ReportsHandler {
	return &ReportsHandler{service: ticketService}
}

// Overview GET /reports/overview.
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	overview := h.service.Overview(c.Context())
	return c.JSON(fiber.Map{"data": dto.NewOverviewResponse(overview)})
}

// Weekly GET /reports/weekly.
func (h *ReportsHandler) Weekly(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.WeeklyStats(c.Context())})
}
