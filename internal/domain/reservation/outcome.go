package reservation

import (
	"time"

	"tickettock/internal/domain/seat"
)

// Outcome is the result of one reservation request. Negative business results
// (sold out, contention, replay) are outcomes, not errors.
type Outcome struct {
	success        bool
	seat           *seat.Seat
	reason         Reason
	remainingSeats int64
	ttlRemaining   *time.Duration
	sequence       *Sequence
}

// RemainingUnknown is reported when a seat was granted but the available
// count could not be read afterwards.
const RemainingUnknown int64 = -1

func Granted(s *seat.Seat, seq Sequence, remaining int64, ttl *time.Duration) *Outcome {
	return &Outcome{
		success:        true,
		seat:           s,
		reason:         ReasonSuccess,
		remainingSeats: remaining,
		ttlRemaining:   ttl,
		sequence:       &seq,
	}
}

// Replayed reports a seat granted by an earlier request from the same identity.
func Replayed(s *seat.Seat, remaining int64, ttl *time.Duration) *Outcome {
	return &Outcome{
		success:        true,
		seat:           s,
		reason:         ReasonAlreadyReserved,
		remainingSeats: remaining,
		ttlRemaining:   ttl,
	}
}

func SoldOut(seq Sequence, remaining int64) *Outcome {
	return &Outcome{reason: ReasonSoldOut, remainingSeats: remaining, sequence: &seq}
}

func Contention(seq Sequence, remaining int64) *Outcome {
	return &Outcome{reason: ReasonContention, remainingSeats: remaining, sequence: &seq}
}

func (o *Outcome) Success() bool                { return o.success }
func (o *Outcome) Seat() *seat.Seat             { return o.seat }
func (o *Outcome) Reason() Reason               { return o.reason }
func (o *Outcome) RemainingSeats() int64        { return o.remainingSeats }
func (o *Outcome) TTLRemaining() *time.Duration { return o.ttlRemaining }
func (o *Outcome) Sequence() *Sequence          { return o.sequence }

// IsReplay reports whether no new seat was granted because one already exists.
func (o *Outcome) IsReplay() bool { return o.success && o.reason == ReasonAlreadyReserved }
