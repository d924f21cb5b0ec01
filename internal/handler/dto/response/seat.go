package response

import (
	"time"

	"tickettock/internal/domain/seat"
	"tickettock/internal/usecase/commands"
	"tickettock/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	ID         int64      `json:"id"`
	Status     string     `json:"status"`
	ReservedBy *string    `json:"reserved_by,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

func FromSeatView(v *queries.SeatView) (*SeatResponse, error) {
	var resp SeatResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromSeatViews(views []*queries.SeatView) ([]*SeatResponse, error) {
	resp := make([]*SeatResponse, 0, len(views))
	if err := copier.Copy(&resp, &views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromSeat(s *seat.Seat) (*SeatResponse, error) {
	return FromSeatView(queries.ToSeatView(s))
}

type ResetResponse struct {
	SeatCount int   `json:"seat_count"`
	Sequence  int64 `json:"sequence"`
}

func FromResetResult(r *commands.ResetResult) *ResetResponse {
	return &ResetResponse{SeatCount: r.SeatCount, Sequence: r.Sequence}
}
