// Package handler implements the HTTP handlers for the route planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (itinerary.go, poi.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pkordes/route-planner/backend/internal/auth"
	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// ItineraryServicer defines the business operations the itinerary handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	Create(ctx context.Context, ownerID int64, name string, routeData json.RawMessage) (domain.Itinerary, error)
	List(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)
	GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error)
	UpdateStatus(ctx context.Context, ownerID, id int64, status string) error
}

// FeedbackServicer defines the feedback ledger operations.
type FeedbackServicer interface {
	Record(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)
	List(ctx context.Context, userID int64) ([]domain.Feedback, error)
}

// POIServicer defines the catalog read paths.
type POIServicer interface {
	List(ctx context.Context) ([]domain.POI, error)
	Recommended(ctx context.Context, userID int64) ([]domain.POI, error)
	Liked(ctx context.Context, userID int64) ([]domain.POI, error)
	MostLiked(ctx context.Context) ([]domain.POIPopularity, error)
}

// ReportServicer defines the admin reports.
type ReportServicer interface {
	Users(ctx context.Context, f domain.UserFilter) (domain.UserReport, error)
	POIs(ctx context.Context, f domain.POIFilter) (domain.POIReport, error)
}

// UserServicer defines admin account moderation.
type UserServicer interface {
	List(ctx context.Context) ([]domain.User, error)
	SetBanned(ctx context.Context, id int64, banned bool) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions.
type Server struct {
	itineraries ItineraryServicer
	feedback    FeedbackServicer
	pois        POIServicer
	reports     ReportServicer
	users       UserServicer
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, feedback FeedbackServicer, pois POIServicer, reports ReportServicer, users UserServicer) *Server {
	return &Server{
		itineraries: itineraries,
		feedback:    feedback,
		pois:        pois,
		reports:     reports,
		users:       users,
	}
}

// errNoIdentity means a secured operation ran without the bearer middleware.
var errNoIdentity = errors.New("handler: no caller identity in request context")

// caller returns the identity attached by middleware.NewBearerAuth.
func caller(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok {
		return auth.Identity{}, errNoIdentity
	}
	return id, nil
}
