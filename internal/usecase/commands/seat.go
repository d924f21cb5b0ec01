package commands

import (
	"context"

	"tickettock/internal/domain/seat"
	"tickettock/internal/infra"
	"tickettock/internal/pkg/errs"
)

type DirectReserveParams struct {
	SeatID     int64
	HolderName string
	Contact    *string
}

// SeatCommands reserves a specific seat outside the FCFS flow. It skips the
// sequence allocator and the idempotency guard.
type SeatCommands interface {
	Reserve(ctx context.Context, params DirectReserveParams) (*seat.Seat, error)
}

type seatCommandsImpl struct {
	store SeatStore
}

func NewSeatCommands(store SeatStore) SeatCommands {
	return &seatCommandsImpl{store: store}
}

func (s *seatCommandsImpl) Reserve(ctx context.Context, params DirectReserveParams) (*seat.Seat, error) {
	if err := seat.ValidateID(params.SeatID); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	holder, err := seat.NewHolder(params.HolderName, params.Contact)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	reserved, err := s.store.ConditionalAssign(ctx, params.SeatID, holder)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrSeatNotFound)
		case infra.IsKind(err, infra.KindAlreadyReserved):
			return nil, errs.Mark(err, errs.ErrSeatAlreadyReserved)
		case infra.IsFailure(err):
			return nil, infraErr(err, "direct reserve failed")
		default:
			return nil, errs.Wrap(err, "direct reserve failed")
		}
	}

	return reserved, nil
}
