package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
	EventDeleted   EventStatus = "deleted"
)

type Event struct {
	ID                   int64       `json:"id"`
	OrganizerID          int64       `json:"organizer_id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Venue                string      `json:"venue"`
	Capacity             int         `json:"capacity"`
	Starts               time.Time   `json:"starts_at"`
	Ends                 time.Time   `json:"ends_at"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Status               EventStatus `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
}

// TicketTier is a priced admission category with a finite available quantity.
// quantity_available never goes below zero; every decrement is a conditional
// update checked by affected-row count.
type TicketTier struct {
	ID                   int64            `json:"id"`
	EventID              int64            `json:"event_id"`
	TicketType           string           `json:"ticket_type"`
	Price                decimal.Decimal  `json:"price"`
	QuantityAvailable    int              `json:"quantity_available"`
	EarlyBirdPrice       *decimal.Decimal `json:"early_bird_price,omitempty"`
	EarlyBirdDeadline    *time.Time       `json:"early_bird_deadline,omitempty"`
	GroupThreshold       *int             `json:"group_threshold,omitempty"`
	GroupDiscountPercent *decimal.Decimal `json:"group_discount_percent,omitempty"`
	Benefits             []string         `json:"benefits"`
}

// BelongsTo reports whether the tier is sold under the given event. A
// registration or purchase must never pair a tier with another event's id.
func (t TicketTier) BelongsTo(eventID int64) bool {
	return t.EventID == eventID
}

// UnitPrice returns the effective per-ticket price at the given instant,
// honoring the early-bird window when one is configured.
func (t TicketTier) UnitPrice(at time.Time) decimal.Decimal {
	if t.EarlyBirdPrice != nil && t.EarlyBirdDeadline != nil && at.Before(*t.EarlyBirdDeadline) {
		return *t.EarlyBirdPrice
	}
	return t.Price
}

// TotalFor returns the charge for qty tickets at the given instant, applying
// the group discount once the configured threshold is met.
func (t TicketTier) TotalFor(qty int, at time.Time) decimal.Decimal {
	total := t.UnitPrice(at).Mul(decimal.NewFromInt(int64(qty)))
	if t.GroupThreshold != nil && t.GroupDiscountPercent != nil && qty >= *t.GroupThreshold {
		discount := total.Mul(*t.GroupDiscountPercent).Div(decimal.NewFromInt(100))
		total = total.Sub(discount)
	}
	return total.Round(2)
}

type Purchase struct {
	ID          uuid.UUID       `json:"id"`
	TicketID    int64           `json:"ticket_id"`
	EventID     int64           `json:"event_id"`
	UserID      int64           `json:"user_id"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Attendees   []Attendee      `json:"attendees"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SponsorTicketAllocation struct {
	ID                int64      `json:"id"`
	SponsorID         int64      `json:"sponsor_id"`
	EventID           int64      `json:"event_id"`
	EventTitle        string     `json:"event_title,omitempty"`
	TicketType        string     `json:"ticket_type"`
	QuantityAllocated int        `json:"quantity_allocated"`
	QuantityUsed      int        `json:"quantity_used"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Available reports whether the allocation can still be drawn down at the
// given instant.
func (a SponsorTicketAllocation) Available(at time.Time) bool {
	if a.QuantityUsed >= a.QuantityAllocated {
		return false
	}
	if a.ExpiresAt != nil && !at.Before(*a.ExpiresAt) {
		return false
	}
	return true
}

type RedemptionStatus string

const (
	RedemptionActive    RedemptionStatus = "active"
	RedemptionUsed      RedemptionStatus = "used"
	RedemptionExpired   RedemptionStatus = "expired"
	RedemptionCancelled RedemptionStatus = "cancelled"
)

type SponsorTicketRedemption struct {
	ID           uuid.UUID        `json:"id"`
	AllocationID int64            `json:"allocation_id"`
	RedeemedBy   string           `json:"redeemed_by"`
	TicketCode   string           `json:"ticket_code"`
	Status       RedemptionStatus `json:"status"`
	RedeemedAt   time.Time        `json:"redeemed_at"`
}

type ApplicationRole string

const (
	RoleModel    ApplicationRole = "model"
	RoleDesigner ApplicationRole = "designer"
	RoleSponsor  ApplicationRole = "sponsor"
)

type Application struct {
	ID        uuid.UUID       `json:"id"`
	EventID   int64           `json:"event_id"`
	Role      ApplicationRole `json:"role"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Details   map[string]any  `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
