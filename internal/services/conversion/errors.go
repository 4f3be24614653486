package conversion

import "errors"

// Service errors.
var (
	ErrInvalidAmount    = errors.New("invalid conversion amount")
	ErrClickNotFound    = errors.New("click not found")
	ErrAlreadyConverted = errors.New("click already converted")
	ErrUnavailable      = errors.New("conversion store unavailable")
)
