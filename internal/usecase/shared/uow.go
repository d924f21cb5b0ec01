package shared

import (
	"context"
)

// UnitOfWork runs fn in one transaction, retrying the whole callback when the
// database aborts it for a transient reason.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Seats() SeatMaintenance
}

// SeatMaintenance is the bulk write side of the seat table used by admin reset.
type SeatMaintenance interface {
	Truncate(ctx context.Context) error
	Seed(ctx context.Context, count int) error
}
