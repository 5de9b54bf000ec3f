// Package testutil holds the integration-test plumbing for the trips
// database. Everything here is opt-in: helpers skip the calling test unless
// TEST_DATABASE_URL points at a Postgres instance.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registrations/migrations"
)

// dsnEnv names the variable that enables database tests.
const dsnEnv = "TEST_DATABASE_URL"

// DSN returns the test database URL and whether it is set.
func DSN() (string, bool) {
	dsn := os.Getenv(dsnEnv)
	return dsn, dsn != ""
}

// NewPool returns a pinged pool on the test database, closed on cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	require.NoError(t, err, "testutil.NewPool: open")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(context.Background()), "testutil.NewPool: ping")
	return pool
}

// NewTx begins a transaction on a fresh pool and rolls it back on cleanup.
// Repositories built on the returned pgx.Tx see each other's writes, and
// nothing survives the test.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	require.NoError(t, err, "testutil.NewTx: begin")
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// NewSQLDB returns a database/sql handle over a test pool for code that
// speaks database/sql, such as goose. It shares the pool's connections.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { db.Close() })
	return db
}

// Migrate applies every pending migration to the database at dsn.
// It is meant for TestMain, which has no *testing.T.
func Migrate(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("testutil.Migrate: open: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if _, err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("testutil.Migrate: %w", err)
	}
	return nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn, ok := DSN()
	if !ok {
		t.Skip(dsnEnv + " not set; skipping database test")
	}
	return dsn
}
