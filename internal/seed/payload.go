package seed

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Payload is the hand-authored description of one event and its related
// rows. Ids are fixed by the author so re-running the seed upserts instead
// of duplicating.
type Payload struct {
	Event    EventPayload    `json:"event"`
	Tickets  []TicketPayload `json:"tickets"`
	Images   []ImagePayload  `json:"images"`
	Sponsors []SponsorEntry  `json:"sponsors"`
}

type EventPayload struct {
	ID                   int64      `json:"id"`
	OrganizerID          int64      `json:"organizer_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Venue                string     `json:"venue"`
	Capacity             int        `json:"capacity"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	Status               string     `json:"status"`
}

type TicketPayload struct {
	ID                int64            `json:"id"`
	TicketType        string           `json:"ticket_type"`
	Price             decimal.Decimal  `json:"price"`
	Quantity          int              `json:"quantity"`
	EarlyBirdPrice    *decimal.Decimal `json:"early_bird_price,omitempty"`
	EarlyBirdDeadline *time.Time       `json:"early_bird_deadline,omitempty"`
	Benefits          []string         `json:"benefits,omitempty"`
}

type ImagePayload struct {
	URL      string `json:"url"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

type SponsorEntry struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// Validate rejects a payload before any row is written.
func (p *Payload) Validate() error {
	if err := p.Event.validate(); err != nil {
		return err
	}

	if len(p.Tickets) == 0 {
		return errors.New("at least one ticket tier is required")
	}

	for _, t := range p.Tickets {
		if err := t.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (e EventPayload) validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required),
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Venue, validation.Required),
		validation.Field(&e.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&e.StartsAt, validation.Required),
		validation.Field(&e.EndsAt, validation.Required),
	)
	if err != nil {
		return err
	}

	if !e.EndsAt.After(e.StartsAt) {
		return errors.New("event ends_at must be after starts_at")
	}

	return nil
}

func (t TicketPayload) validate() error {
	err := validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.TicketType, validation.Required),
		validation.Field(&t.Quantity, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return err
	}

	if t.Price.IsNegative() {
		return errors.New("ticket price must be zero or positive")
	}

	return nil
}

// SwimwearPayload is the stock payload for the swimwear edition launch.
func SwimwearPayload() *Payload {
	starts := time.Date(2026, time.November, 14, 19, 0, 0, 0, time.UTC)
	ends := starts.Add(4 * time.Hour)
	deadline := starts.Add(-24 * time.Hour)
	earlyDeadline := starts.AddDate(0, -1, 0)

	earlyGA := decimal.NewFromInt(59)
	earlyVIP := decimal.NewFromInt(149)

	return &Payload{
		Event: EventPayload{
			ID:                   9001,
			OrganizerID:          1,
			Title:                "Fashionistas Swimwear Edition",
			Description:          "Runway showcase of resort and swimwear collections.",
			Venue:                "Harbourfront Pavilion",
			Capacity:             600,
			StartsAt:             starts,
			EndsAt:               ends,
			RegistrationDeadline: &deadline,
			Status:               "published",
		},
		Tickets: []TicketPayload{
			{
				ID:                90011,
				TicketType:        "general",
				Price:             decimal.NewFromInt(79),
				Quantity:          400,
				EarlyBirdPrice:    &earlyGA,
				EarlyBirdDeadline: &earlyDeadline,
				Benefits:          []string{"runway seating", "afterparty access"},
			},
			{
				ID:                90012,
				TicketType:        "vip",
				Price:             decimal.NewFromInt(199),
				Quantity:          150,
				EarlyBirdPrice:    &earlyVIP,
				EarlyBirdDeadline: &earlyDeadline,
				Benefits:          []string{"front row", "backstage tour", "gift bag"},
			},
			{
				ID:         90013,
				TicketType: "press",
				Price:      decimal.NewFromInt(0),
				Quantity:   50,
				Benefits:   []string{"press pit access", "media kit"},
			},
		},
		Images: []ImagePayload{
			{URL: "https://cdn.fashionistas.events/swimwear/hero.jpg", Category: "hero", Position: 0},
			{URL: "https://cdn.fashionistas.events/swimwear/runway-1.jpg", Category: "gallery", Position: 1},
			{URL: "https://cdn.fashionistas.events/swimwear/runway-2.jpg", Category: "gallery", Position: 2},
		},
		Sponsors: []SponsorEntry{
			{Name: "Azure Swim Co", Tier: "gold"},
			{Name: "Coastline Apparel", Tier: "silver"},
		},
	}
}
