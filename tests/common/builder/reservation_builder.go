//go:build unit || e2e

package builder

import (
	"fmt"

	"tickettock/internal/domain/seat"
	reqdto "tickettock/internal/handler/dto/request"
	"tickettock/internal/usecase/commands"
)

type ReservationBuilder struct {
	Identity string
	UserName string
	Phone    *string
	Sequence *int64
}

func NewReservationBuilder() *ReservationBuilder {
	phone := "010-1234-5678"
	return &ReservationBuilder{
		Identity: "user-1",
		UserName: "Alice",
		Phone:    &phone,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithIdentity(identity string) *ReservationBuilder {
	r.Identity = identity
	return r
}

// WithIndex derives a distinct identity and holder name from i.
func (r *ReservationBuilder) WithIndex(i int) *ReservationBuilder {
	r.Identity = fmt.Sprintf("user-%d", i)
	r.UserName = fmt.Sprintf("Holder %d", i)
	return r
}

func (r *ReservationBuilder) WithUserName(name string) *ReservationBuilder {
	r.UserName = name
	return r
}

func (r *ReservationBuilder) WithPhone(phone *string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) WithSequence(seq int64) *ReservationBuilder {
	r.Sequence = &seq
	return r
}

// Build methods
func (r *ReservationBuilder) BuildParams() commands.ReserveParams {
	return commands.ReserveParams{
		Identity:       r.Identity,
		HolderName:     r.UserName,
		Contact:        r.Phone,
		PinnedSequence: r.Sequence,
	}
}

func (r *ReservationBuilder) BuildDirectParams(seatID int64) commands.DirectReserveParams {
	return commands.DirectReserveParams{
		SeatID:     seatID,
		HolderName: r.UserName,
		Contact:    r.Phone,
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReserveSeatRequest {
	return reqdto.ReserveSeatRequest{
		UserName: r.UserName,
		Phone:    r.Phone,
	}
}

func (r *ReservationBuilder) BuildHolder() (seat.Holder, error) {
	return seat.NewHolder(r.UserName, r.Phone)
}

// BuildReservedSeat returns the seat as a store would after granting it.
func (r *ReservationBuilder) BuildReservedSeat(id int64) *seat.Seat {
	name := r.UserName
	return seat.Hydrate(id, seat.StatusReserved, &name, r.Phone, nil)
}
