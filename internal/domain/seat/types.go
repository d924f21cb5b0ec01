package seat

import "errors"

var (
	ErrInvalidID       = errors.New("seat id must be a positive integer")
	ErrEmptyHolderName = errors.New("holder name cannot be empty")
	ErrHolderTooLong   = errors.New("holder name exceeds maximum length")
	ErrContactTooLong  = errors.New("contact exceeds maximum length")
	ErrAlreadyReserved = errors.New("seat already reserved")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
)

func (s Status) String() string { return string(s) }

// StatusFromFlag maps the persisted availability flag (true = reserved).
func StatusFromFlag(reserved bool) Status {
	if reserved {
		return StatusReserved
	}
	return StatusAvailable
}
