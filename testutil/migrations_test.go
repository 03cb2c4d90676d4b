package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/migrations"
	"github.com/pkordes/route-planner/backend/testutil"
)

// tables lists every table the migrations create, in creation order.
var tables = []string{"users", "pois", "itineraries", "user_feedback"}

// TestMigrations is an integration test that verifies the full migration
// round-trip against a real Postgres database:
//
//  1. Apply all migrations (goose up).
//  2. Assert every expected table exists.
//  3. Roll back all migrations (goose reset).
//  4. Assert every table has been removed.
//
// The test is skipped automatically when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := migrations.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// --- Ensure a clean baseline before testing ---
	// Another package's TestMain may have already applied migrations against this
	// shared test DB. Reset to version 0 first so this test is self-contained and
	// order-independent, whether run alone or as part of the full suite.
	if _, err := provider.DownTo(ctx, 0); err != nil {
		t.Fatalf("TestMigrations: initial reset: %v", err)
	}

	// --- Apply all migrations ---
	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, len(tables), "one migration per table")

	// Verify all expected tables exist after applying migrations.
	for _, table := range tables {
		assertTableExists(t, db, table)
	}

	// --- Roll back all migrations ---
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	// Verify all tables have been removed after rolling back.
	for _, table := range tables {
		assertTableNotExists(t, db, table)
	}
}

// assertTableExists fails the test if the named table does not exist in the
// public schema of the connected database.
func assertTableExists(t *testing.T, db *sql.DB, table string) {
	t.Helper()
	assertTablePresence(t, db, table, true)
}

// assertTableNotExists fails the test if the named table exists in the
// public schema of the connected database.
func assertTableNotExists(t *testing.T, db *sql.DB, table string) {
	t.Helper()
	assertTablePresence(t, db, table, false)
}

func assertTablePresence(t *testing.T, db *sql.DB, table string, shouldExist bool) {
	t.Helper()

	// Use the information_schema to check table existence in a portable way.
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)

	if shouldExist {
		assert.True(t, exists, "expected table %q to exist", table)
	} else {
		assert.False(t, exists, "expected table %q to not exist", table)
	}
}

// TestMigrations_Constraints checks the schema-level guards the service relies
// on: route_data must be a JSON array and status must be a known value.
func TestMigrations_Constraints(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	_, err := migrations.Up(ctx, db)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	var userID int64
	require.NoError(t, tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email) VALUES ('constraint', 'constraint@example.com') RETURNING id`,
	).Scan(&userID))

	_, err = tx.ExecContext(ctx, `SAVEPOINT s`)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO itineraries (user_id, name, route_data) VALUES ($1, 'x', '{"a":1}'::jsonb)`, userID)
	assert.Error(t, err, "object route_data must be rejected")
	_, err = tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT s`)
	require.NoError(t, err)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO itineraries (user_id, name, route_data, status) VALUES ($1, 'x', '[]'::jsonb, 'done')`, userID)
	assert.Error(t, err, "unknown status must be rejected")
}
