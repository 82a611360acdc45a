package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/intervention-desk/internal/directory"
	"github.com/spec-kit/intervention-desk/internal/domain"
	"github.com/spec-kit/intervention-desk/internal/events"
	"github.com/spec-kit/intervention-desk/internal/filter"
	"github.com/spec-kit/intervention-desk/internal/report"
	"github.com/spec-kit/intervention-desk/internal/store"
)

// TicketService coordinates ticket workflows over the store, the directory
// and the reporting engines.
type TicketService struct {
	store      *store.TicketStore
	directory  *directory.Directory
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.TicketStore
	Directory  *directory.Directory
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload. The person's name is
// resolved from the directory at create time and frozen on the ticket.
type TicketCreateInput struct {
	UserID      string
	Description string
	Comment     string
	Priority    domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		directory:  deps.Directory,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CreateTicket validates the input against the directory and appends a new
// ticket to the store.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	person, err := s.directory.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.store.Create(ctx, store.TicketDraft{
		UserID:      person.ID,
		UserName:    person.Name,
		Description: input.Description,
		Comment:     input.Comment,
		Priority:    input.Priority,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			UserID:             ticket.UserID,
			UserName:           ticket.UserName,
			Priority:           ticket.Priority,
			DescriptionPreview: stringPreview(ticket.Description, 120),
		},
	})
	return ticket, nil
}

// ListTickets returns the filtered view of the collection, newest first.
func (s *TicketService) ListTickets(ctx context.Context, params filter.Params) []domain.Ticket {
	return filter.Apply(s.store.Load(ctx), params)
}

// Overview computes the full reporting view as of now.
func (s *TicketService) Overview(ctx context.Context) report.Overview {
	return report.BuildOverview(s.store.Load(ctx), s.now())
}

// WeeklyStats computes the weekly series as of now.
func (s *TicketService) WeeklyStats(ctx context.Context) []report.WeekBucket {
	return report.Weekly(s.store.Load(ctx), s.now())
}

// SeedDemoData seeds the store with demo tickets when it is empty.
func (s *TicketService) SeedDemoData(ctx context.Context) (int, error) {
	count, err := s.store.SeedDemo(ctx, s.directory.List())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventStoreSeeded,
			Payload: events.StoreSeededPayload{Count: count},
		})
	}
	return count, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
