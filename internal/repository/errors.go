package repository

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrInsufficientInventory = errors.New("insufficient ticket inventory")
	ErrAllocationUnavailable = errors.New("allocation exhausted or expired")
	ErrInvalidTransition     = errors.New("invalid registration transition")
)
