package service

import (
	"context"
	"fmt"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// POIService exposes the read-only catalog views, including the
// feedback-aware recommendation lists.
type POIService struct {
	pois repo.POIRepo
}

// NewPOIService constructs a POIService backed by the provided repo.
func NewPOIService(pois repo.POIRepo) *POIService {
	return &POIService{pois: pois}
}

// List returns the whole catalog.
func (s *POIService) List(ctx context.Context) ([]domain.POI, error) {
	pois, err := s.pois.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.POIService.List: %w", err)
	}
	return nonNil(pois), nil
}

// Recommended returns every POI the user has not disliked.
func (s *POIService) Recommended(ctx context.Context, userID int64) ([]domain.POI, error) {
	pois, err := s.pois.ListExcludingDisliked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.POIService.Recommended: %w", err)
	}
	return nonNil(pois), nil
}

// Liked returns every POI the user has liked.
func (s *POIService) Liked(ctx context.Context, userID int64) ([]domain.POI, error) {
	pois, err := s.pois.ListLiked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.POIService.Liked: %w", err)
	}
	return nonNil(pois), nil
}

// MostLiked returns the catalog ranked by like count.
func (s *POIService) MostLiked(ctx context.Context) ([]domain.POIPopularity, error) {
	ranked, err := s.pois.ListMostLiked(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.POIService.MostLiked: %w", err)
	}
	if ranked == nil {
		return []domain.POIPopularity{}, nil
	}
	return ranked, nil
}

func nonNil(pois []domain.POI) []domain.POI {
	if pois == nil {
		return []domain.POI{}
	}
	return pois
}
