package application

import "errors"

// Error taxonomy surfaced to the HTTP layer. Handlers map these onto
// status codes; none of them is treated as fatal.
var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateTitle   = errors.New("post title already exists")
	ErrUnknownEmail     = errors.New("unknown email")
	ErrBadPassword      = errors.New("bad password")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrAuthRequired     = errors.New("authentication required")
	ErrDeliveryFailed   = errors.New("mail delivery failed")
	ErrValidationFailed = errors.New("validation failed")
)
