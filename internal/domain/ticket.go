package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. The values double as
// the persisted wire format, so they must stay lowercase hyphenated.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists every status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusClosed,
}

var ticketStatusLabels = map[TicketStatus]string{
	TicketStatusOpen:       "Ouvert",
	TicketStatusInProgress: "En cours",
	TicketStatusClosed:     "Fermé",
}

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	_, ok := ticketStatusLabels[s]
	return ok
}

// Label returns the display label for s.
func (s TicketStatus) Label() string {
	if label, ok := ticketStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketPriorities lists every priority in display order.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}

var ticketPriorityLabels = map[TicketPriority]string{
	TicketPriorityLow:    "Faible",
	TicketPriorityMedium: "Moyenne",
	TicketPriorityHigh:   "Élevée",
	TicketPriorityUrgent: "Urgente",
}

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	_, ok := ticketPriorityLabels[p]
	return ok
}

// Label returns the display label for p.
func (p TicketPriority) Label() string {
	if label, ok := ticketPriorityLabels[p]; ok {
		return label
	}
	return string(p)
}

// Ticket is an intervention request filed against a directory person.
// UserName is a denormalized copy of the person's name taken at creation
// time and never refreshed afterwards. The JSON tags are the persisted
// blob schema and must not change shape.
type Ticket struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	UserName    string         `json:"userName"`
	Description string         `json:"description"`
	Comment     string         `json:"comment"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
