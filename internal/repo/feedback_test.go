package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

func TestFeedbackRepo_Upsert_Insert(t *testing.T) {
	tx := newTx(t)
	r := repo.NewFeedbackRepo(tx)
	user := insertUser(t, tx, "alice", domain.RoleUser)
	poi := insertPOI(t, tx, "Falls", 10)

	got, err := r.Upsert(context.Background(), domain.Feedback{UserID: user, POIID: poi, Liked: true})

	require.NoError(t, err)
	assert.Equal(t, user, got.UserID)
	assert.Equal(t, poi, got.POIID)
	assert.True(t, got.Liked)
	assert.False(t, got.UpdatedAt.IsZero())
}

// Repeating a like keeps one row; a dislike afterwards flips the same row.
func TestFeedbackRepo_Upsert_OverwritesSameKey(t *testing.T) {
	tx := newTx(t)
	r := repo.NewFeedbackRepo(tx)
	user := insertUser(t, tx, "alice", domain.RoleUser)
	poi := insertPOI(t, tx, "Falls", 10)
	ctx := context.Background()

	fb := domain.Feedback{UserID: user, POIID: poi, Liked: true}
	_, err := r.Upsert(ctx, fb)
	require.NoError(t, err)
	_, err = r.Upsert(ctx, fb)
	require.NoError(t, err)

	rows, err := r.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Liked)

	fb.Liked = false
	_, err = r.Upsert(ctx, fb)
	require.NoError(t, err)

	rows, err = r.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Liked)
}

func TestFeedbackRepo_Upsert_UnknownPOI(t *testing.T) {
	tx := newTx(t)
	r := repo.NewFeedbackRepo(tx)
	user := insertUser(t, tx, "alice", domain.RoleUser)

	_, err := r.Upsert(context.Background(), domain.Feedback{UserID: user, POIID: 999_999_999, Liked: true})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackRepo_ListByUser_ScopedAndOrdered(t *testing.T) {
	tx := newTx(t)
	r := repo.NewFeedbackRepo(tx)
	alice := insertUser(t, tx, "alice", domain.RoleUser)
	bob := insertUser(t, tx, "bob", domain.RoleUser)
	first := insertPOI(t, tx, "Falls", 10)
	second := insertPOI(t, tx, "Ridge", 5)
	ctx := context.Background()

	_, err := r.Upsert(ctx, domain.Feedback{UserID: alice, POIID: second, Liked: false})
	require.NoError(t, err)
	_, err = r.Upsert(ctx, domain.Feedback{UserID: alice, POIID: first, Liked: true})
	require.NoError(t, err)
	_, err = r.Upsert(ctx, domain.Feedback{UserID: bob, POIID: first, Liked: false})
	require.NoError(t, err)

	rows, err := r.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first, rows[0].POIID)
	assert.True(t, rows[0].Liked)
	assert.Equal(t, second, rows[1].POIID)
	assert.False(t, rows[1].Liked)

	none, err := r.ListByUser(ctx, 999_999_999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
