package affiliate

import "errors"

// Service errors.
var (
	ErrNotFound  = errors.New("affiliate not found")
	ErrForbidden = errors.New("access denied")
)
