package readstore

import (
	"context"

	"tickettock/internal/infra"
	"tickettock/internal/infra/converter"
	"tickettock/internal/infra/db"
	"tickettock/internal/pkg/pgconv"
	"tickettock/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	listSeats   = `SELECT ` + converter.SeatColumns + ` FROM seats ORDER BY id`
	getSeatByID = `SELECT ` + converter.SeatColumns + ` FROM seats WHERE id = $1`
)

type SeatReadStore struct {
	db db.DBTX
}

func NewSeatReadStore(db db.DBTX) *SeatReadStore {
	return &SeatReadStore{db: db}
}

func (r *SeatReadStore) FindAll(ctx context.Context) ([]*queries.SeatView, error) {
	rows, err := r.db.Query(ctx, listSeats)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}

	seatRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[converter.SeatRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan seats", err)
	}

	result := make([]*queries.SeatView, len(seatRows))
	for i, row := range seatRows {
		result[i] = converter.SeatRowToView(row)
	}
	return result, nil
}

func (r *SeatReadStore) FindByID(ctx context.Context, id int64) (*queries.SeatView, error) {
	var row converter.SeatRow
	err := r.db.QueryRow(ctx, getSeatByID, id).Scan(row.ScanTargets()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat by ID", err)
	}

	return converter.SeatRowToView(row), nil
}
