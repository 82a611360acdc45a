package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("DeliversToSubscribers", func(t *testing.T) {
		dispatcher := NewInMemoryDispatcher()

		var got []Event
		dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
			got = append(got, event)
			return nil
		})

		require.NoError(t, dispatcher.Publish(ctx, Event{Type: EventTicketCreated, TicketID: "t1"}))
		require.Len(t, got, 1)
		assert.Equal(t, "t1", got[0].TicketID)
	})

	t.Run("IgnoresUnrelatedEventTypes", func(t *testing.T) {
		dispatcher := NewInMemoryDispatcher()

		calls := 0
		dispatcher.Subscribe(EventStoreSeeded, func(ctx context.Context, event Event) error {
			calls++
			return nil
		})

		require.NoError(t, dispatcher.Publish(ctx, Event{Type: EventTicketCreated}))
		assert.Equal(t, 0, calls)
	})

	t.Run("FailingHandlerDoesNotStopOthers", func(t *testing.T) {
		dispatcher := NewInMemoryDispatcher()

		dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
			return errors.New("boom")
		})
		delivered := false
		dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
			delivered = true
			return nil
		})

		require.NoError(t, dispatcher.Publish(ctx, Event{Type: EventTicketCreated}))
		assert.True(t, delivered)
	})
}
