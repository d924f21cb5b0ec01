package queries

import (
	"context"
	"time"

	"tickettock/internal/domain/seat"
	"tickettock/internal/infra"
	"tickettock/internal/pkg/errs"
)

type SeatView struct {
	ID         int64      `json:"id"`
	Status     string     `json:"status"`
	ReservedBy *string    `json:"reserved_by,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

type SeatReadStore interface {
	FindAll(ctx context.Context) ([]*SeatView, error)
	FindByID(ctx context.Context, id int64) (*SeatView, error)
}

type SeatQueries interface {
	List(ctx context.Context) ([]*SeatView, error)
	Get(ctx context.Context, id int64) (*SeatView, error)
}

type seatQueriesImpl struct {
	readStore SeatReadStore
}

func NewSeatQueries(readStore SeatReadStore) SeatQueries {
	return &seatQueriesImpl{readStore: readStore}
}

func (q *seatQueriesImpl) List(ctx context.Context) ([]*SeatView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInfraUnavailable)
	}
	return views, nil
}

func (q *seatQueriesImpl) Get(ctx context.Context, id int64) (*SeatView, error) {
	if err := seat.ValidateID(id); err != nil {
		return nil, errs.Mark(err, errs.ErrSeatNotFound)
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSeatNotFound)
		}
		return nil, errs.Mark(err, errs.ErrInfraUnavailable)
	}
	return view, nil
}

// ToSeatView flattens a domain seat for the read side.
func ToSeatView(s *seat.Seat) *SeatView {
	return &SeatView{
		ID:         s.ID(),
		Status:     s.Status().String(),
		ReservedBy: s.Holder(),
		Phone:      s.Contact(),
		ReservedAt: s.ReservedAt(),
	}
}
