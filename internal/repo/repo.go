// Package repo contains all database access logic for the shop API.
// Each resource has its own file with an interface and a Postgres
// implementation; memory.go holds the in-memory variants used by tests and
// by STORAGE_BACKEND=memory. No business logic lives here.
package repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/shopapi/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds Postgres statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// syncSequence advances the identity sequence of table to at least id. Save
// calls it after writing a caller-chosen id so that later inserts without an
// id do not collide with it. The sequence never moves backwards, so ids of
// deleted rows are not handed out again.
func syncSequence(ctx context.Context, db db, table string, id domain.ID) error {
	const q = `
		WITH s AS (SELECT pg_get_serial_sequence($1, 'id')::regclass AS seq)
		SELECT setval(s.seq, GREATEST($2::bigint, COALESCE(pg_sequence_last_value(s.seq), 0)))
		FROM s`
	if _, err := db.Exec(ctx, q, table, int64(id)); err != nil {
		return fmt.Errorf("sync %s id sequence: %w", table, err)
	}
	return nil
}
