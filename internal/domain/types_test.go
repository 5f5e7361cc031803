package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTicketTierBelongsTo(t *testing.T) {
	tier := TicketTier{ID: 90011, EventID: 9001}

	assert.True(t, tier.BelongsTo(9001))
	assert.False(t, tier.BelongsTo(9002), "a tier must not be claimable under another event")
}

func TestTicketTierUnitPrice(t *testing.T) {
	deadline := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	early := decimal.NewFromInt(59)

	tier := TicketTier{
		Price:             decimal.NewFromInt(79),
		EarlyBirdPrice:    &early,
		EarlyBirdDeadline: &deadline,
	}

	t.Run("early bird before the deadline", func(t *testing.T) {
		got := tier.UnitPrice(deadline.Add(-time.Hour))
		assert.True(t, got.Equal(early), "got %s", got)
	})

	t.Run("full price at and after the deadline", func(t *testing.T) {
		assert.True(t, tier.UnitPrice(deadline).Equal(tier.Price))
		assert.True(t, tier.UnitPrice(deadline.Add(time.Hour)).Equal(tier.Price))
	})

	t.Run("full price when no early bird is configured", func(t *testing.T) {
		plain := TicketTier{Price: decimal.NewFromInt(199)}
		assert.True(t, plain.UnitPrice(deadline.Add(-time.Hour)).Equal(plain.Price))
	})
}

func TestTicketTierTotalFor(t *testing.T) {
	now := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	threshold := 5
	discount := decimal.NewFromInt(10)

	tier := TicketTier{
		Price:                decimal.NewFromInt(80),
		GroupThreshold:       &threshold,
		GroupDiscountPercent: &discount,
	}

	t.Run("no discount below the threshold", func(t *testing.T) {
		got := tier.TotalFor(4, now)
		assert.True(t, got.Equal(decimal.NewFromInt(320)), "got %s", got)
	})

	t.Run("discount at the threshold", func(t *testing.T) {
		// 5 * 80 = 400, minus 10% = 360
		got := tier.TotalFor(5, now)
		assert.True(t, got.Equal(decimal.NewFromInt(360)), "got %s", got)
	})

	t.Run("result is rounded to cents", func(t *testing.T) {
		oddDiscount := decimal.NewFromFloat(7.5)
		odd := TicketTier{
			Price:                decimal.NewFromFloat(33.33),
			GroupThreshold:       &threshold,
			GroupDiscountPercent: &oddDiscount,
		}
		// 5 * 33.33 = 166.65, minus 7.5% = 154.15125 -> 154.15
		got := odd.TotalFor(5, now)
		assert.True(t, got.Equal(decimal.NewFromFloat(154.15)), "got %s", got)
	})

	t.Run("early bird combines with group discount", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		early := decimal.NewFromInt(60)
		combined := tier
		combined.EarlyBirdPrice = &early
		combined.EarlyBirdDeadline = &deadline

		// 5 * 60 = 300, minus 10% = 270
		got := combined.TotalFor(5, now)
		assert.True(t, got.Equal(decimal.NewFromInt(270)), "got %s", got)
	})
}

func TestSponsorAllocationAvailable(t *testing.T) {
	now := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Hour)

	t.Run("available while unused and unexpired", func(t *testing.T) {
		a := SponsorTicketAllocation{QuantityAllocated: 10, QuantityUsed: 9, ExpiresAt: &expiry}
		assert.True(t, a.Available(now))
	})

	t.Run("exhausted", func(t *testing.T) {
		a := SponsorTicketAllocation{QuantityAllocated: 10, QuantityUsed: 10}
		assert.False(t, a.Available(now))
	})

	t.Run("expired", func(t *testing.T) {
		a := SponsorTicketAllocation{QuantityAllocated: 10, QuantityUsed: 0, ExpiresAt: &expiry}
		assert.False(t, a.Available(expiry))
	})

	t.Run("no expiry means no time limit", func(t *testing.T) {
		a := SponsorTicketAllocation{QuantityAllocated: 1, QuantityUsed: 0}
		assert.True(t, a.Available(now.AddDate(10, 0, 0)))
	})
}
