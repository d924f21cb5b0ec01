package commands

import (
	"context"
	"time"

	"tickettock/internal/domain/seat"
)

// SequenceAllocator issues linearizable, increasing integers from a shared counter.
type SequenceAllocator interface {
	Next(ctx context.Context) (int64, error)
	// Reset makes base the next value Next returns.
	Reset(ctx context.Context, base int64) error
	// Peek returns the value the next call to Next would issue. Telemetry only.
	Peek(ctx context.Context) (int64, error)
}

// IdempotencyRecord is a prior grant for one requester identity.
type IdempotencyRecord struct {
	SeatID int64
	// TTLRemaining is nil when the record never expires.
	TTLRemaining *time.Duration
}

type IdempotencyGuard interface {
	// Lookup returns nil, nil when the identity has no live record.
	Lookup(ctx context.Context, identity string) (*IdempotencyRecord, error)
	// Record stores the grant; ttl == 0 means no expiry.
	Record(ctx context.Context, identity string, seatID int64, ttl time.Duration) error
	// Purge removes every record and returns how many were deleted.
	Purge(ctx context.Context) (int, error)
}

// SeatStore reports failures as infra.RepositoryError with kind
// NOT_FOUND, ALREADY_RESERVED or one of the failure kinds.
type SeatStore interface {
	ConditionalAssign(ctx context.Context, id int64, holder seat.Holder) (*seat.Seat, error)
	CountAvailable(ctx context.Context) (int64, error)
}

// SeatResetter replaces the whole seat set with count fresh seats numbered 1..count.
type SeatResetter interface {
	Reset(ctx context.Context, count int) error
}

type SeatReservedEvent struct {
	EventID    string    `json:"event_id"`
	SeatID     int64     `json:"seat_id"`
	Identity   string    `json:"identity"`
	Holder     string    `json:"holder"`
	Sequence   *int64    `json:"sequence"`
	ReservedAt time.Time `json:"reserved_at"`
}

type EventPublisher interface {
	PublishSeatReserved(ctx context.Context, evt SeatReservedEvent) error
}
