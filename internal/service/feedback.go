package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/metrics"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// FeedbackService implements the per-user like/dislike ledger.
type FeedbackService struct {
	repo repo.FeedbackRepo
}

// NewFeedbackService constructs a FeedbackService backed by the provided repo.
func NewFeedbackService(r repo.FeedbackRepo) *FeedbackService {
	return &FeedbackService{repo: r}
}

// Record upserts fb. Repeating the same submission is a no-op; a changed
// verdict overwrites the existing row.
// Returns domain.ErrValidation for a non-positive POI id or a POI that does
// not exist in the catalog.
func (s *FeedbackService) Record(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	if fb.POIID < 1 {
		return domain.Feedback{}, fmt.Errorf("service.FeedbackService.Record: %w: invalid parameters", domain.ErrValidation)
	}

	saved, err := s.repo.Upsert(ctx, fb)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Feedback{}, fmt.Errorf("service.FeedbackService.Record: %w: invalid parameters: %w", domain.ErrValidation, err)
		}
		return domain.Feedback{}, fmt.Errorf("service.FeedbackService.Record: %w", err)
	}
	metrics.RecordFeedback(saved.Liked)
	return saved, nil
}

// List returns every feedback row recorded by userID.
func (s *FeedbackService) List(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.FeedbackService.List: %w", err)
	}
	if rows == nil {
		return []domain.Feedback{}, nil
	}
	return rows, nil
}
