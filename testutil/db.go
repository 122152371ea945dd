// Package testutil provides shared helpers for Postgres integration tests.
// Helpers skip automatically when no database is configured, so unit tests
// run without Docker or a running server.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

const (
	// DSNEnv names the variable holding the integration test database URL.
	DSNEnv = "TEST_DATABASE_URL"
	// ContainerEnv, when set to "1", makes EnsureDSN start a Postgres container
	// if DSNEnv is empty.
	ContainerEnv = "TEST_POSTGRES_CONTAINER"
)

// EnsureDSN returns the integration database URL, starting a container when
// requested via ContainerEnv. The returned stop function is never nil.
// An empty DSN means integration tests should be skipped.
//
// On success the DSN is exported as DSNEnv so NewPool and NewSQLDB see it.
func EnsureDSN(ctx context.Context) (dsn string, stop func(), err error) {
	stop = func() {}
	if dsn = os.Getenv(DSNEnv); dsn != "" {
		return dsn, stop, nil
	}
	if os.Getenv(ContainerEnv) != "1" {
		return "", stop, nil
	}

	dsn, stop, err = StartPostgres(ctx)
	if err != nil {
		return "", func() {}, err
	}
	if err := os.Setenv(DSNEnv, dsn); err != nil {
		stop()
		return "", func() {}, err
	}
	return dsn, stop, nil
}

// NewPool opens a *pgxpool.Pool against TEST_DATABASE_URL.
// The test is skipped if the variable is not set, and the pool is closed when
// the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB against TEST_DATABASE_URL through the pgx
// database/sql driver, for code that needs database/sql (goose).
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for dsn and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
