package uow

import (
	"context"

	"tickettock/internal/usecase/shared"
)

// SeatResetter rebuilds the seat table inside a single transaction.
type SeatResetter struct {
	uow shared.UnitOfWork
}

func NewSeatResetter(uow shared.UnitOfWork) *SeatResetter {
	return &SeatResetter{uow: uow}
}

func (r *SeatResetter) Reset(ctx context.Context, count int) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Seats().Truncate(ctx); err != nil {
			return err
		}
		return tx.Seats().Seed(ctx, count)
	})
}
