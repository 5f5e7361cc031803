package events

import "errors"

var (
	ErrValidation    = errors.New("invalid event payload")
	ErrEventNotFound = errors.New("event not found")
)
