//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedSeats inserts count available seats numbered from 1 onward after a reset.
func SeedSeats(t *testing.T, db Querier, count int) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"INSERT INTO seats (status) SELECT FALSE FROM generate_series(1, $1)", count)
	require.NoError(t, err)
	require.Equal(t, int64(count), tag.RowsAffected())
}

// ReserveSeat marks a seat reserved behind the service's back.
func ReserveSeat(t *testing.T, db Querier, id int64, holder string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE seats SET status = TRUE, reserved_by = $2, reserved_at = now() WHERE id = $1", id, holder)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "seat %d does not exist", id)
}

func CountAvailable(t *testing.T, db Querier) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM seats WHERE status = FALSE").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeatHolder returns the recorded holder of a seat, or nil while it is available.
func SeatHolder(t *testing.T, db Querier, id int64) *string {
	t.Helper()

	var holder *string
	err := db.QueryRow(context.Background(), "SELECT reserved_by FROM seats WHERE id = $1", id).Scan(&holder)
	require.NoError(t, err)
	return holder
}

// ResetDB empties every table in the public schema and restarts its
// identity columns, so seat ids are handed out from 1 again.
func ResetDB(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := db.Query(ctx,
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err != nil {
		return err
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, name := range tables {
		quoted[i] = pgx.Identifier{"public", name}.Sanitize()
	}
	_, err = db.Exec(ctx, "TRUNCATE "+strings.Join(quoted, ", ")+" RESTART IDENTITY CASCADE")
	return err
}
