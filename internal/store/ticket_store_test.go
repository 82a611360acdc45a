package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/intervention-desk/internal/domain"
	apperrors "github.com/spec-kit/intervention-desk/pkg/util"
)

func newTestStore() (*TicketStore, *MemoryBlob) {
	blob := NewMemoryBlob()
	return NewTicketStore(blob, zap.NewNop()), blob
}

func validDraft() TicketDraft {
	return TicketDraft{
		UserID:      "1",
		UserName:    "Ahmed Bennani",
		Description: "Mise à jour du dossier client",
		Comment:     "à traiter cette semaine",
		Priority:    domain.TicketPriorityHigh,
	}
}

func TestTicketStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("AbsentBlobYieldsEmpty", func(t *testing.T) {
		s, _ := newTestStore()
		tickets := s.Load(ctx)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("CorruptBlobYieldsEmpty", func(t *testing.T) {
		s, blob := newTestStore()
		require.NoError(t, blob.Write(ctx, []byte("not json at all {{{")))
		tickets := s.Load(ctx)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("WrongShapeYieldsEmpty", func(t *testing.T) {
		s, blob := newTestStore()
		require.NoError(t, blob.Write(ctx, []byte(`{"version":2,"tickets":[]}`)))
		assert.Empty(t, s.Load(ctx))
	})

	t.Run("RoundTripPreservesOrder", func(t *testing.T) {
		s, _ := newTestStore()
		created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		tickets := []domain.Ticket{
			{ID: "b", UserID: "2", UserName: "Fatima Alaoui", Description: "relance", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityLow, CreatedAt: created, UpdatedAt: created},
			{ID: "a", UserID: "1", UserName: "Ahmed Bennani", Description: "dossier", Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityHigh, CreatedAt: created, UpdatedAt: created},
		}
		require.NoError(t, s.Save(ctx, tickets))
		assert.Equal(t, tickets, s.Load(ctx))
	})
}

func TestTicketStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("StampsNewTicket", func(t *testing.T) {
		s, _ := newTestStore()
		now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }

		ticket, err := s.Create(ctx, validDraft())
		require.NoError(t, err)
		assert.NotEmpty(t, ticket.ID)
		assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
		assert.Equal(t, now, ticket.CreatedAt)
		assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
	})

	t.Run("PrependsNewestFirst", func(t *testing.T) {
		s, _ := newTestStore()
		first, err := s.Create(ctx, validDraft())
		require.NoError(t, err)

		second := validDraft()
		second.Description = "Relance de l'offre commerciale"
		created, err := s.Create(ctx, second)
		require.NoError(t, err)

		tickets := s.Load(ctx)
		require.Len(t, tickets, 2)
		assert.Equal(t, created.ID, tickets[0].ID)
		assert.Equal(t, first.ID, tickets[1].ID)
	})

	t.Run("EmptyDescriptionRejectedAndNotPersisted", func(t *testing.T) {
		s, _ := newTestStore()
		draft := validDraft()
		draft.Description = "   "

		_, err := s.Create(ctx, draft)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Empty(t, s.Load(ctx))
	})

	t.Run("MissingUserRejected", func(t *testing.T) {
		s, _ := newTestStore()
		draft := validDraft()
		draft.UserID = ""

		_, err := s.Create(ctx, draft)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("EmptyPriorityDefaultsToMedium", func(t *testing.T) {
		s, _ := newTestStore()
		draft := validDraft()
		draft.Priority = ""

		ticket, err := s.Create(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	})

	t.Run("UnknownPriorityRejected", func(t *testing.T) {
		s, _ := newTestStore()
		draft := validDraft()
		draft.Priority = "critical"

		_, err := s.Create(ctx, draft)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("PersistedBlobUsesWireSchema", func(t *testing.T) {
		s, blob := newTestStore()
		_, err := s.Create(ctx, validDraft())
		require.NoError(t, err)

		data, found, err := blob.Read(ctx)
		require.NoError(t, err)
		require.True(t, found)

		var raw []map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Len(t, raw, 1)
		for _, field := range []string{"id", "userId", "userName", "description", "comment", "status", "priority", "createdAt", "updatedAt"} {
			assert.Contains(t, raw[0], field)
		}
		assert.Equal(t, "open", raw[0]["status"])
	})
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	people := []domain.Person{
		{ID: "1", Name: "Ahmed Bennani", Status: domain.PersonStatusAvailable},
		{ID: "2", Name: "Fatima Alaoui", Status: domain.PersonStatusBusy},
	}

	t.Run("SeedsEmptyStore", func(t *testing.T) {
		s, _ := newTestStore()
		count, err := s.SeedDemo(ctx, people)
		require.NoError(t, err)
		assert.Equal(t, demoTicketCount, count)

		tickets := s.Load(ctx)
		require.Len(t, tickets, demoTicketCount)
		for i := 1; i < len(tickets); i++ {
			assert.False(t, tickets[i].CreatedAt.After(tickets[i-1].CreatedAt), "seeded tickets must be newest first")
		}
		for _, ticket := range tickets {
			assert.NotEmpty(t, ticket.Description)
			assert.True(t, ticket.Status.Valid())
			assert.True(t, ticket.Priority.Valid())
			assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
		}
	})

	t.Run("NoOpWhenStoreHasTickets", func(t *testing.T) {
		s, _ := newTestStore()
		ticket, err := s.Create(ctx, validDraft())
		require.NoError(t, err)

		count, err := s.SeedDemo(ctx, people)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		tickets := s.Load(ctx)
		require.Len(t, tickets, 1)
		assert.Equal(t, ticket.ID, tickets[0].ID)
	})

	t.Run("NoOpWithoutPeople", func(t *testing.T) {
		s, _ := newTestStore()
		count, err := s.SeedDemo(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
