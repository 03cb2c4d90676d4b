// Package service contains the business logic for the route planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/metrics"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// ItineraryService implements the itinerary lifecycle: creation, owner-scoped
// reads, and status transitions under a TransitionPolicy.
type ItineraryService struct {
	repo   repo.ItineraryRepo
	policy domain.TransitionPolicy
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.ItineraryRepo, policy domain.TransitionPolicy) *ItineraryService {
	return &ItineraryService{repo: r, policy: policy}
}

// Create validates routeData and persists a new pending itinerary owned by ownerID.
// An empty name becomes domain.DefaultItineraryName; any other name is stored as given.
// Returns domain.ErrValidation if routeData is not a JSON array.
func (s *ItineraryService) Create(ctx context.Context, ownerID int64, name string, routeData json.RawMessage) (domain.Itinerary, error) {
	route, err := validateRouteData(routeData)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}

	if name == "" {
		name = domain.DefaultItineraryName
	}

	created, err := s.repo.Create(ctx, domain.Itinerary{
		OwnerID:   ownerID,
		Name:      name,
		RouteData: route,
		Status:    domain.StatusPending,
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	metrics.ItinerariesCreated.Inc()
	return created, nil
}

// List returns every itinerary owned by ownerID, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) List(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	itineraries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	if itineraries == nil {
		return []domain.Itinerary{}, nil
	}
	return itineraries, nil
}

// GetByID returns one itinerary owned by ownerID.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (s *ItineraryService) GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error) {
	it, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return it, nil
}

// UpdateStatus moves an owned itinerary to status.
// Returns domain.ErrValidation for an unknown status or a transition the
// policy forbids, and domain.ErrNotFound for a missing or foreign itinerary.
func (s *ItineraryService) UpdateStatus(ctx context.Context, ownerID, id int64, status string) error {
	to, err := domain.ParseItineraryStatus(status)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.UpdateStatus: %w", err)
	}

	err = s.repo.UpdateStatus(ctx, ownerID, id, to, s.policy.AllowedFrom(to))
	if errors.Is(err, domain.ErrNotFound) && s.policy == domain.TransitionsStrict {
		// The guarded UPDATE cannot tell "not yours" from "frozen".
		// A follow-up owner-scoped read can, without weakening the guard.
		if cur, getErr := s.repo.GetByID(ctx, ownerID, id); getErr == nil {
			return fmt.Errorf("service.ItineraryService.UpdateStatus: %w: itinerary is already %s", domain.ErrValidation, cur.Status)
		}
	}
	if err != nil {
		return fmt.Errorf("service.ItineraryService.UpdateStatus: %w", err)
	}
	metrics.ItineraryStatusUpdates.WithLabelValues(string(to)).Inc()
	return nil
}

// validateRouteData checks the outer shape only: a JSON array, possibly empty.
// The returned slice has surrounding whitespace trimmed.
func validateRouteData(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' || !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: invalid route data format", domain.ErrValidation)
	}
	return json.RawMessage(trimmed), nil
}
