package tickets

import "errors"

var (
	ErrValidation            = errors.New("invalid ticket payload")
	ErrTicketNotFound        = errors.New("ticket tier not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrInsufficientInventory = errors.New("not enough tickets available")
)
