package service_test

import (
	"context"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockItineraryRepo struct {
	create       func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID      func(ctx context.Context, ownerID, id int64) (domain.Itinerary, error)
	listByOwner  func(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)
	updateStatus func(ctx context.Context, ownerID, id int64, to domain.ItineraryStatus, from []domain.ItineraryStatus) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockItineraryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	return m.listByOwner(ctx, ownerID)
}
func (m *mockItineraryRepo) UpdateStatus(ctx context.Context, ownerID, id int64, to domain.ItineraryStatus, from []domain.ItineraryStatus) error {
	return m.updateStatus(ctx, ownerID, id, to, from)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockFeedbackRepo struct {
	upsert     func(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)
	listByUser func(ctx context.Context, userID int64) ([]domain.Feedback, error)
}

func (m *mockFeedbackRepo) Upsert(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	return m.upsert(ctx, fb)
}
func (m *mockFeedbackRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	return m.listByUser(ctx, userID)
}

var _ repo.FeedbackRepo = (*mockFeedbackRepo)(nil)

type mockPOIRepo struct {
	list                  func(ctx context.Context) ([]domain.POI, error)
	listExcludingDisliked func(ctx context.Context, userID int64) ([]domain.POI, error)
	listLiked             func(ctx context.Context, userID int64) ([]domain.POI, error)
	listMostLiked         func(ctx context.Context) ([]domain.POIPopularity, error)
	search                func(ctx context.Context, f domain.POIFilter) ([]domain.POI, error)
}

func (m *mockPOIRepo) List(ctx context.Context) ([]domain.POI, error) { return m.list(ctx) }
func (m *mockPOIRepo) ListExcludingDisliked(ctx context.Context, userID int64) ([]domain.POI, error) {
	return m.listExcludingDisliked(ctx, userID)
}
func (m *mockPOIRepo) ListLiked(ctx context.Context, userID int64) ([]domain.POI, error) {
	return m.listLiked(ctx, userID)
}
func (m *mockPOIRepo) ListMostLiked(ctx context.Context) ([]domain.POIPopularity, error) {
	return m.listMostLiked(ctx)
}
func (m *mockPOIRepo) Search(ctx context.Context, f domain.POIFilter) ([]domain.POI, error) {
	return m.search(ctx, f)
}

var _ repo.POIRepo = (*mockPOIRepo)(nil)

type mockUserRepo struct {
	search    func(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, error)
	list      func(ctx context.Context) ([]domain.User, error)
	setBanned func(ctx context.Context, id int64, banned bool) error
}

func (m *mockUserRepo) Search(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, error) {
	return m.search(ctx, f)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) { return m.list(ctx) }
func (m *mockUserRepo) SetBanned(ctx context.Context, id int64, banned bool) error {
	return m.setBanned(ctx, id, banned)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)
