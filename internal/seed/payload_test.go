package seed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *Payload {
	starts := time.Date(2026, time.November, 14, 19, 0, 0, 0, time.UTC)
	return &Payload{
		Event: EventPayload{
			ID:       9001,
			Title:    "Test Edition",
			Venue:    "Pavilion",
			Capacity: 100,
			StartsAt: starts,
			EndsAt:   starts.Add(2 * time.Hour),
			Status:   "published",
		},
		Tickets: []TicketPayload{
			{ID: 90011, TicketType: "general", Price: decimal.NewFromInt(50), Quantity: 100},
		},
	}
}

func TestPayloadValidate(t *testing.T) {
	t.Run("accepts a valid payload", func(t *testing.T) {
		assert.NoError(t, validPayload().Validate())
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		p := validPayload()
		p.Event.Title = ""
		assert.Error(t, p.Validate())
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		p := validPayload()
		p.Event.Capacity = 0
		assert.Error(t, p.Validate())
	})

	t.Run("rejects ends before starts", func(t *testing.T) {
		p := validPayload()
		p.Event.EndsAt = p.Event.StartsAt.Add(-time.Hour)
		assert.Error(t, p.Validate())
	})

	t.Run("rejects a payload with no tickets", func(t *testing.T) {
		p := validPayload()
		p.Tickets = nil
		assert.Error(t, p.Validate())
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		p := validPayload()
		p.Tickets[0].Price = decimal.NewFromInt(-1)
		assert.Error(t, p.Validate())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		p := validPayload()
		p.Tickets[0].Quantity = 0
		assert.Error(t, p.Validate())
	})
}

func TestSwimwearPayloadIsValid(t *testing.T) {
	p := SwimwearPayload()

	require.NoError(t, p.Validate())
	assert.Len(t, p.Tickets, 3)
	assert.NotEmpty(t, p.Images)
	assert.NotEmpty(t, p.Sponsors)

	// a free press tier must pass validation
	for _, tier := range p.Tickets {
		assert.False(t, tier.Price.IsNegative(), "tier %s", tier.TicketType)
	}
}
