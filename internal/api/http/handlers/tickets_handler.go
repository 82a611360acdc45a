package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/intervention-desk/internal/api/dto"
	"github.com/spec-kit/intervention-desk/internal/domain"
	"github.com/spec-kit/intervention-desk/internal/filter"
	"github.com/spec-kit/intervention-desk/internal/service"
	apperrors "github.com/spec-kit/intervention-desk/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" || req.Description == "" {
		return apperrors.NewValidationError("userId and description required", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), service.TicketCreateInput{
		UserID:      req.UserID,
		Description: req.Description,
		Comment:     req.Comment,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	params, err := parseTicketListQuery(c)
	if err != nil {
		return err
	}
	tickets := h.service.ListTickets(c.Context(), params)
	return c.JSON(fiber.Map{"data": tickets})
}

func parseTicketListQuery(c *fiber.Ctx) (filter.Params, error) {
	var query dto.TicketListQuery
	if err := c.QueryParser(&query); err != nil {
		return filter.Params{}, apperrors.NewValidationError("invalid query", nil)
	}
	params := filter.Params{
		Search:   query.Search,
		Status:   query.Status,
		Priority: query.Priority,
	}
	if params.Status != "" && params.Status != filter.All && !domain.TicketStatus(params.Status).Valid() {
		return filter.Params{}, apperrors.NewValidationError("unknown status filter", map[string]any{"status": params.Status})
	}
	if params.Priority != "" && params.Priority != filter.All && !domain.TicketPriority(params.Priority).Valid() {
		return filter.Params{}, apperrors.NewValidationError("unknown priority filter", map[string]any{"priority": params.Priority})
	}
	return params, nil
}
