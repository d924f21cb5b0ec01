package converter

import (
	"tickettock/internal/domain/seat"
	"tickettock/internal/pkg/pgconv"
	"tickettock/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// SeatColumns lists seats columns in SeatRow field order.
const SeatColumns = "id, status, reserved_by, phone, reserved_at"

// SeatRow mirrors one row of the seats table. status = TRUE means reserved.
type SeatRow struct {
	ID         int64
	Status     bool
	ReservedBy pgtype.Text
	Phone      pgtype.Text
	ReservedAt pgtype.Timestamptz
}

func (r *SeatRow) ScanTargets() []any {
	return []any{&r.ID, &r.Status, &r.ReservedBy, &r.Phone, &r.ReservedAt}
}

func SeatRowToDomain(row SeatRow) *seat.Seat {
	return seat.Hydrate(
		row.ID,
		seat.StatusFromFlag(row.Status),
		pgconv.StringPtrFromPgtype(row.ReservedBy),
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.TimePtrFromPgtype(row.ReservedAt),
	)
}

func SeatRowToView(row SeatRow) *queries.SeatView {
	return queries.ToSeatView(SeatRowToDomain(row))
}
