package httpgin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fashionistas/fashionistas-api/internal/domain"
)

// Every response is wrapped the same way: {"status":"success","data":...} or
// {"status":"error","message":...}.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func failure(msg string) Envelope {
	return Envelope{Status: "error", Message: msg}
}

type AttendeeInput struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone"`
	Dietary       string `json:"dietary"`
	Accessibility string `json:"accessibility"`
}

func toAttendees(in []AttendeeInput) []domain.Attendee {
	out := make([]domain.Attendee, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Attendee{
			FirstName:     a.FirstName,
			LastName:      a.LastName,
			Email:         a.Email,
			Phone:         a.Phone,
			Dietary:       a.Dietary,
			Accessibility: a.Accessibility,
		})
	}
	return out
}

type CreateEventRequest struct {
	Title                string  `json:"title" binding:"required"`
	Description          string  `json:"description"`
	Venue                string  `json:"venue" binding:"required"`
	Capacity             int     `json:"capacity" binding:"required,gt=0"`
	StartsAt             string  `json:"starts_at" binding:"required"`
	EndsAt               string  `json:"ends_at" binding:"required"`
	RegistrationDeadline *string `json:"registration_deadline"`
	Status               string  `json:"status"`
}

type CreateTicketRequest struct {
	EventID              int64            `json:"event_id" binding:"required"`
	TicketType           string           `json:"ticket_type" binding:"required"`
	Price                decimal.Decimal  `json:"price"`
	QuantityAvailable    int              `json:"quantity_available" binding:"required,gt=0"`
	EarlyBirdPrice       *decimal.Decimal `json:"early_bird_price"`
	EarlyBirdDeadline    *time.Time       `json:"early_bird_deadline"`
	GroupThreshold       *int             `json:"group_threshold"`
	GroupDiscountPercent *decimal.Decimal `json:"group_discount_percent"`
	Benefits             []string         `json:"benefits"`
}

type UpdateTicketRequest struct {
	TicketType           string           `json:"ticket_type" binding:"required"`
	Price                decimal.Decimal  `json:"price"`
	EarlyBirdPrice       *decimal.Decimal `json:"early_bird_price"`
	EarlyBirdDeadline    *time.Time       `json:"early_bird_deadline"`
	GroupThreshold       *int             `json:"group_threshold"`
	GroupDiscountPercent *decimal.Decimal `json:"group_discount_percent"`
	Benefits             []string         `json:"benefits"`
}

type PurchaseRequest struct {
	TicketID  int64           `json:"ticket_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Attendees []AttendeeInput `json:"attendee_details" binding:"required,min=1,dive"`
}

type CreateRegistrationRequest struct {
	EventID   int64           `json:"event_id" binding:"required"`
	TicketID  int64           `json:"ticket_id" binding:"required"`
	Attendees []AttendeeInput `json:"attendee_details" binding:"required,min=1,dive"`
}

type ConfirmRegistrationRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

type UpdateAttendeesRequest struct {
	Attendees []AttendeeInput `json:"attendee_details" binding:"required,min=1,dive"`
}

type CreateAllocationRequest struct {
	SponsorID         int64      `json:"sponsor_id" binding:"required"`
	EventID           int64      `json:"event_id" binding:"required"`
	TicketType        string     `json:"ticket_type" binding:"required"`
	QuantityAllocated int        `json:"quantity_allocated" binding:"required,gt=0"`
	ExpiresAt         *time.Time `json:"expires_at"`
}

type RedeemRequest struct {
	AllocationID int64  `json:"allocation_id" binding:"required"`
	RedeemedBy   string `json:"redeemed_by" binding:"required"`
}

type SubmitApplicationRequest struct {
	EventID int64          `json:"event_id" binding:"required"`
	Role    string         `json:"role" binding:"required,oneof=model designer sponsor"`
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required"`
	Details map[string]any `json:"details"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
