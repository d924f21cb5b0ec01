package request

type ResetSeatsRequest struct {
	SeatCount *int `json:"seat_count,omitempty"`
}
