package reservation

import "errors"

var (
	ErrInvalidIdentity = errors.New("requester identity is malformed")
	ErrInvalidSequence = errors.New("sequence must be a positive integer")
	ErrUnknownStrategy = errors.New("unknown reservation strategy")
)

// Strategy selects how the coordinator obtains sequence numbers.
type Strategy string

const (
	// StrategySelfRetry draws sequences from the allocator and retries on conflict.
	StrategySelfRetry Strategy = "self_retry"
	// StrategyPinned uses the caller-supplied sequence for a single attempt.
	StrategyPinned Strategy = "pinned"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySelfRetry, StrategyPinned:
		return Strategy(s), nil
	default:
		return "", ErrUnknownStrategy
	}
}

type Reason string

const (
	ReasonSuccess         Reason = "success"
	ReasonAlreadyReserved Reason = "already_reserved"
	ReasonSoldOut         Reason = "sold_out"
	ReasonContention      Reason = "contention"
)

func (r Reason) String() string { return string(r) }
