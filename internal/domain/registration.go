package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

var (
	ErrMissingPaymentIntent = errors.New("payment intent id is required")
	ErrNotConfirmable       = errors.New("only a pending registration can be confirmed")
)

// Attendee is one person covered by a registration or purchase.
type Attendee struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Dietary       string `json:"dietary,omitempty"`
	Accessibility string `json:"accessibility,omitempty"`
}

func (a Attendee) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FirstName, validation.Required),
		validation.Field(&a.LastName, validation.Required),
		validation.Field(&a.Email, validation.Required, is.Email),
	)
}

// ValidateAttendees checks every entry and requires at least one.
func ValidateAttendees(attendees []Attendee) error {
	if len(attendees) == 0 {
		return errors.New("at least one attendee is required")
	}
	for _, a := range attendees {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Registration is a user's claim on one ticket tier of one event. Status moves
// pending -> confirmed, and pending|confirmed -> cancelled; cancelled is
// terminal. Inventory is adjusted only inside guarded transitions so a repeat
// cancel never releases the same ticket twice.
type Registration struct {
	ID              uuid.UUID          `json:"id"`
	EventID         int64              `json:"event_id"`
	TicketID        int64              `json:"ticket_id"`
	UserID          int64              `json:"user_id"`
	Status          RegistrationStatus `json:"status"`
	PaymentStatus   PaymentStatus      `json:"payment_status"`
	PaymentIntentID string             `json:"payment_intent_id,omitempty"`
	Attendees       []Attendee         `json:"attendees"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Confirm transitions pending -> confirmed/paid. Confirming a confirmed
// registration with the same payment intent is a no-op; anything else is
// rejected.
func (r *Registration) Confirm(paymentIntentID string) error {
	if paymentIntentID == "" {
		return ErrMissingPaymentIntent
	}
	switch r.Status {
	case RegistrationPending:
		r.Status = RegistrationConfirmed
		r.PaymentStatus = PaymentPaid
		r.PaymentIntentID = paymentIntentID
		return nil
	case RegistrationConfirmed:
		if r.PaymentIntentID == paymentIntentID {
			return nil
		}
		return ErrNotConfirmable
	default:
		return ErrNotConfirmable
	}
}

// Cancel transitions to cancelled. It returns restock=true only on the first
// cancellation; a repeat call succeeds without touching inventory.
func (r *Registration) Cancel() (restock bool, err error) {
	if r.Status == RegistrationCancelled {
		return false, nil
	}
	refunded := r.PaymentStatus == PaymentPaid
	r.Status = RegistrationCancelled
	if refunded {
		r.PaymentStatus = PaymentRefunded
	} else {
		r.PaymentStatus = PaymentCancelled
	}
	return true, nil
}
