package errs

import "errors"

// Sentinel errors shared by the command and query layers. Use-cases attach
// them with Mark; handlers map them to transport status codes.
var (
	// Request errors
	ErrValidation       = errors.New("validation error")
	ErrSequenceRequired = errors.New("pinned sequence required")
	ErrInvalidSeatCount = errors.New("invalid seat count")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Seat errors
	ErrSeatNotFound        = errors.New("seat not found")
	ErrSeatAlreadyReserved = errors.New("seat already reserved")

	// Operation errors
	ErrInfraUnavailable = errors.New("infrastructure unavailable")
)
