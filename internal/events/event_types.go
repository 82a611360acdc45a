package events

import (
	"time"

	"github.com/spec-kit/intervention-desk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventStoreSeeded   EventType = "store_seeded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	UserID             string                `json:"user_id"`
	UserName           string                `json:"user_name"`
	Priority           domain.TicketPriority `json:"priority"`
	DescriptionPreview string                `json:"description_preview"`
}

// StoreSeededPayload payload.
type StoreSeededPayload struct {
	Count int `json:"count"`
}
