package dto

import "github.com/spec-kit/intervention-desk/internal/domain"

// CreateTicketRequest payload. Field names follow the persisted blob
// schema (camelCase) so clients speak one shape end to end.
type CreateTicketRequest struct {
	UserID      string                `json:"userId"`
	Description string                `json:"description"`
	Comment     string                `json:"comment"`
	Priority    domain.TicketPriority `json:"priority"`
}

// TicketListQuery captures the list endpoint's filter parameters.
type TicketListQuery struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
}
