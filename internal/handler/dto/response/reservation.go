package response

import (
	"time"

	"tickettock/internal/domain/reservation"
)

type SeatStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type ReservationResponse struct {
	Success          bool                `json:"success"`
	Seat             *SeatStatusResponse `json:"seat"`
	Reason           *string             `json:"reason"`
	RemainingSeats   int64               `json:"remaining_seats"`
	UserTTLRemaining *int64              `json:"user_ttl_remaining"`
	Sequence         *int64              `json:"sequence"`
}

func FromOutcome(o *reservation.Outcome) *ReservationResponse {
	resp := &ReservationResponse{
		Success:          o.Success(),
		RemainingSeats:   o.RemainingSeats(),
		UserTTLRemaining: ttlSeconds(o.TTLRemaining()),
	}

	if s := o.Seat(); s != nil {
		resp.Seat = &SeatStatusResponse{ID: s.ID(), Status: s.Status().String()}
	}

	// success is reported as a null reason
	if o.Reason() != reservation.ReasonSuccess {
		reason := o.Reason().String()
		resp.Reason = &reason
	}

	if seq := o.Sequence(); seq != nil {
		v := seq.Int64()
		resp.Sequence = &v
	}

	return resp
}

func ttlSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	secs := int64(d.Seconds())
	return &secs
}
