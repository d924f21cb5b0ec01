package repository

import (
	"context"

	"tickettock/internal/domain/seat"
	"tickettock/internal/infra"
	"tickettock/internal/infra/converter"
	"tickettock/internal/infra/db"
	"tickettock/internal/pkg/pgconv"
)

const (
	conditionalAssignSeat = `UPDATE seats
SET status = TRUE, reserved_by = $2, phone = $3, reserved_at = now()
WHERE id = $1 AND status = FALSE
RETURNING ` + converter.SeatColumns

	seatExists = `SELECT EXISTS(SELECT 1 FROM seats WHERE id = $1)`

	countAvailableSeats = `SELECT count(*) FROM seats WHERE status = FALSE`

	truncateSeats = `TRUNCATE seats RESTART IDENTITY`

	seedSeats = `INSERT INTO seats (status) SELECT FALSE FROM generate_series(1, $1)`
)

type SeatRepository struct {
	db db.DBTX
}

func NewSeatRepository(db db.DBTX) *SeatRepository {
	return &SeatRepository{db: db}
}

// ConditionalAssign reserves the seat in one conditioned UPDATE. When nothing
// was updated a second read tells an already reserved seat from a missing one.
func (r *SeatRepository) ConditionalAssign(ctx context.Context, id int64, holder seat.Holder) (*seat.Seat, error) {
	if id < 1 {
		return nil, infra.WrapRepoErr("seat not found", nil, infra.KindNotFound)
	}

	var row converter.SeatRow
	err := r.db.QueryRow(ctx, conditionalAssignSeat,
		id,
		holder.Name(),
		pgconv.StringPtrToPgtype(holder.Contact()),
	).Scan(row.ScanTargets()...)
	if err == nil {
		return converter.SeatRowToDomain(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to assign seat", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, seatExists, id).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check seat existence", err)
	}
	if exists {
		return nil, infra.WrapRepoErr("seat already reserved", nil, infra.KindAlreadyReserved)
	}
	return nil, infra.WrapRepoErr("seat not found", nil, infra.KindNotFound)
}

func (r *SeatRepository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countAvailableSeats).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count available seats", err)
	}
	return count, nil
}

// Truncate clears every seat and restarts id generation at 1.
func (r *SeatRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, truncateSeats); err != nil {
		return infra.WrapRepoErr("failed to truncate seats", err)
	}
	return nil
}

func (r *SeatRepository) Seed(ctx context.Context, count int) error {
	tag, err := r.db.Exec(ctx, seedSeats, count)
	if err != nil {
		return infra.WrapRepoErr("failed to seed seats", err)
	}
	if tag.RowsAffected() != int64(count) {
		return infra.WrapRepoErr("seeded seat count mismatch", nil)
	}
	return nil
}
