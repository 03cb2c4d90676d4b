package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/testutil"
)

// newTx opens a per-test transaction that is rolled back on cleanup.
func newTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// insertUser creates a user row and returns its id.
func insertUser(t *testing.T, tx pgx.Tx, username, role string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO users (username, email, role) VALUES ($1, $2, $3) RETURNING id`,
		username, fmt.Sprintf("%s@example.com", username), role,
	).Scan(&id)
	require.NoError(t, err, "insert user %s", username)
	return id
}

// insertPOI creates a catalog row and returns its id.
func insertPOI(t *testing.T, tx pgx.Tx, name string, visitors int) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO pois (name, description, tags, lat, lng, visitors)
		 VALUES ($1, 'test poi', ARRAY['nature'], 14.1, 121.4, $2) RETURNING id`,
		name, visitors,
	).Scan(&id)
	require.NoError(t, err, "insert poi %s", name)
	return id
}

// setItineraryCreatedAt overrides the store-assigned created_at so ordering
// tests do not depend on the transaction clock.
func setItineraryCreatedAt(t *testing.T, tx pgx.Tx, id int64, at time.Time) {
	t.Helper()
	tag, err := tx.Exec(context.Background(),
		`UPDATE itineraries SET created_at = $1 WHERE id = $2`, at, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "itinerary %d", id)
}
