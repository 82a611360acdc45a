package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusVocabulary(t *testing.T) {
	for _, status := range TicketStatuses {
		assert.True(t, status.Valid(), status)
		assert.NotEqual(t, string(status), status.Label(), "every status needs a display label")
	}
	assert.False(t, TicketStatus("pending").Valid())
	assert.Equal(t, "pending", TicketStatus("pending").Label())
}

func TestPriorityVocabulary(t *testing.T) {
	for _, priority := range TicketPriorities {
		assert.True(t, priority.Valid(), priority)
		assert.NotEqual(t, string(priority), priority.Label(), "every priority needs a display label")
	}
	assert.False(t, TicketPriority("critical").Valid())
}

func TestTicketWireFormat(t *testing.T) {
	created := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ticket := Ticket{
		ID:          "abc",
		UserID:      "1",
		UserName:    "Ahmed Bennani",
		Description: "dossier",
		Comment:     "",
		Status:      TicketStatusInProgress,
		Priority:    TicketPriorityUrgent,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	raw, err := json.Marshal(ticket)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"userId": "1",
		"userName": "Ahmed Bennani",
		"description": "dossier",
		"comment": "",
		"status": "in-progress",
		"priority": "urgent",
		"createdAt": "2024-03-15T12:00:00Z",
		"updatedAt": "2024-03-15T12:00:00Z"
	}`, string(raw))

	var decoded Ticket
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, ticket, decoded)
}
