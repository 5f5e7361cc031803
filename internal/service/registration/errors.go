package registration

import "errors"

var (
	ErrValidation           = errors.New("invalid registration payload")
	ErrSoldOut              = errors.New("ticket tier is sold out")
	ErrEventNotFound        = errors.New("event not found")
	ErrTicketNotFound       = errors.New("ticket tier not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrMissingPaymentIntent = errors.New("payment intent id is required")
	ErrNotConfirmable       = errors.New("registration cannot be confirmed from its current state")
	ErrRegistrationClosed   = errors.New("registration deadline has passed")
)
