package applications

import "errors"

var (
	ErrValidation    = errors.New("invalid application payload")
	ErrEventNotFound = errors.New("event not found")
)
