package tracking

import "errors"

// Service errors.
var (
	ErrInvalidInput = errors.New("invalid tracking input")
	ErrUnavailable  = errors.New("tracking store unavailable")
)
