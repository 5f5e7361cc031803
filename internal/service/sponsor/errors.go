package sponsor

import "errors"

var (
	ErrValidation            = errors.New("invalid allocation payload")
	ErrAllocationNotFound    = errors.New("allocation not found")
	ErrAllocationUnavailable = errors.New("allocation exhausted or expired")
)
