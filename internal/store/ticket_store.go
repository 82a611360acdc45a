package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/intervention-desk/internal/domain"
	apperrors "github.com/spec-kit/intervention-desk/pkg/util"
)

// TicketDraft carries the caller-supplied fields for a new ticket.
type TicketDraft struct {
	UserID      string
	UserName    string
	Description string
	Comment     string
	Priority    domain.TicketPriority
}

// TicketStore owns the canonical ticket collection. All mutation goes
// through Create or Save; reads through Load. An absent or corrupt blob
// degrades to the empty collection and is never surfaced to callers.
type TicketStore struct {
	blob   BlobStore
	logger *zap.Logger

	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

// NewTicketStore constructs a store over the given blob backend.
func NewTicketStore(blob BlobStore, logger *zap.Logger) *TicketStore {
	return &TicketStore{
		blob:   blob,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Load returns the full persisted collection in stored order, newest first.
func (s *TicketStore) Load(ctx context.Context) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save serializes the full collection and replaces the persisted blob.
func (s *TicketStore) Save(ctx context.Context, tickets []domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, tickets)
}

// Create stamps and persists a new ticket from draft, prepending it to the
// collection. The returned ticket has status open and equal creation and
// update timestamps.
func (s *TicketStore) Create(ctx context.Context, draft TicketDraft) (*domain.Ticket, error) {
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if draft.UserID == "" || strings.TrimSpace(draft.UserName) == "" {
		return nil, apperrors.NewValidationError("userId and userName required", nil)
	}
	priority := draft.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": string(draft.Priority)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	ticket := domain.Ticket{
		ID:          s.newID(),
		UserID:      draft.UserID,
		UserName:    strings.TrimSpace(draft.UserName),
		Description: description,
		Comment:     strings.TrimSpace(draft.Comment),
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tickets := append([]domain.Ticket{ticket}, s.load(ctx)...)
	if err := s.save(ctx, tickets); err != nil {
		return nil, err
	}

	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("user_id", ticket.UserID),
		zap.String("priority", string(ticket.Priority)),
	)
	return &ticket, nil
}

// Ping reports backend reachability.
func (s *TicketStore) Ping(ctx context.Context) error {
	return s.blob.Ping(ctx)
}

func (s *TicketStore) load(ctx context.Context) []domain.Ticket {
	data, found, err := s.blob.Read(ctx)
	if err != nil {
		s.logger.Warn("blob read failed, treating store as empty", zap.Error(err))
		return []domain.Ticket{}
	}
	if !found {
		return []domain.Ticket{}
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		s.logger.Warn("blob is not a valid ticket collection, treating store as empty", zap.Error(err))
		return []domain.Ticket{}
	}
	if tickets == nil {
		return []domain.Ticket{}
	}
	return tickets
}

func (s *TicketStore) save(ctx context.Context, tickets []domain.Ticket) error {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	data, err := json.Marshal(tickets)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.blob.Write(ctx, data); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}
