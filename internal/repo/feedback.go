package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/route-planner/backend/internal/domain"
)

// FeedbackRepo defines the persistence operations for the user_feedback ledger.
type FeedbackRepo interface {
	// Upsert records fb, overwriting liked if (user_id, poi_id) already exists.
	// Returns domain.ErrNotFound if the POI (or user) does not exist.
	Upsert(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)

	// ListByUser returns every feedback row of a user ordered by poi_id.
	ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error)
}

// pgFeedbackRepo is the Postgres implementation of FeedbackRepo.
type pgFeedbackRepo struct {
	db db
}

// NewFeedbackRepo constructs a FeedbackRepo backed by the provided db connection.
func NewFeedbackRepo(db db) FeedbackRepo {
	return &pgFeedbackRepo{db: db}
}

// Upsert is one INSERT … ON CONFLICT statement, so two concurrent submissions
// for the same key can never produce two rows.
func (r *pgFeedbackRepo) Upsert(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	const q = `
		INSERT INTO user_feedback (user_id, poi_id, liked)
		VALUES (@user_id, @poi_id, @liked)
		ON CONFLICT (user_id, poi_id) DO UPDATE
		SET liked = EXCLUDED.liked, updated_at = now()
		RETURNING user_id, poi_id, liked, updated_at`

	args := pgx.NamedArgs{"user_id": fb.UserID, "poi_id": fb.POIID, "liked": fb.Liked}
	result, err := scanFeedback(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Feedback{}, wrapErr("repo.FeedbackRepo.Upsert", domain.ErrNotFound)
		}
		return domain.Feedback{}, wrapErr("repo.FeedbackRepo.Upsert", err)
	}
	return result, nil
}

// ListByUser returns all feedback rows for a user.
func (r *pgFeedbackRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	const q = `
		SELECT user_id, poi_id, liked, updated_at
		FROM user_feedback
		WHERE user_id = @user_id
		ORDER BY poi_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, wrapErr("repo.FeedbackRepo.ListByUser", err)
	}
	defer rows.Close()

	out := []domain.Feedback{}
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, wrapErr("repo.FeedbackRepo.ListByUser: scan", err)
		}
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("repo.FeedbackRepo.ListByUser: rows", err)
	}
	return out, nil
}

func scanFeedback(s scanner) (domain.Feedback, error) {
	var fb domain.Feedback
	if err := s.Scan(&fb.UserID, &fb.POIID, &fb.Liked, &fb.UpdatedAt); err != nil {
		return domain.Feedback{}, err
	}
	return fb, nil
}
