package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/internal/auth"
	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
	"github.com/pkordes/route-planner/backend/internal/middleware"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockItineraryServicer struct {
	create       func(ctx context.Context, ownerID int64, name string, routeData json.RawMessage) (domain.Itinerary, error)
	list         func(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)
	getByID      func(ctx context.Context, ownerID, id int64) (domain.Itinerary, error)
	updateStatus func(ctx context.Context, ownerID, id int64, status string) error
}

func (m *mockItineraryServicer) Create(ctx context.Context, ownerID int64, name string, routeData json.RawMessage) (domain.Itinerary, error) {
	return m.create(ctx, ownerID, name, routeData)
}
func (m *mockItineraryServicer) List(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	return m.list(ctx, ownerID)
}
func (m *mockItineraryServicer) GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockItineraryServicer) UpdateStatus(ctx context.Context, ownerID, id int64, status string) error {
	return m.updateStatus(ctx, ownerID, id, status)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockFeedbackServicer struct {
	record func(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)
	list   func(ctx context.Context, userID int64) ([]domain.Feedback, error)
}

func (m *mockFeedbackServicer) Record(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	return m.record(ctx, fb)
}
func (m *mockFeedbackServicer) List(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	return m.list(ctx, userID)
}

var _ handler.FeedbackServicer = (*mockFeedbackServicer)(nil)

type mockPOIServicer struct {
	list        func(ctx context.Context) ([]domain.POI, error)
	recommended func(ctx context.Context, userID int64) ([]domain.POI, error)
	liked       func(ctx context.Context, userID int64) ([]domain.POI, error)
	mostLiked   func(ctx context.Context) ([]domain.POIPopularity, error)
}

func (m *mockPOIServicer) List(ctx context.Context) ([]domain.POI, error) { return m.list(ctx) }
func (m *mockPOIServicer) Recommended(ctx context.Context, userID int64) ([]domain.POI, error) {
	return m.recommended(ctx, userID)
}
func (m *mockPOIServicer) Liked(ctx context.Context, userID int64) ([]domain.POI, error) {
	return m.liked(ctx, userID)
}
func (m *mockPOIServicer) MostLiked(ctx context.Context) ([]domain.POIPopularity, error) {
	return m.mostLiked(ctx)
}

var _ handler.POIServicer = (*mockPOIServicer)(nil)

type mockReportServicer struct {
	users func(ctx context.Context, f domain.UserFilter) (domain.UserReport, error)
	pois  func(ctx context.Context, f domain.POIFilter) (domain.POIReport, error)
}

func (m *mockReportServicer) Users(ctx context.Context, f domain.UserFilter) (domain.UserReport, error) {
	return m.users(ctx, f)
}
func (m *mockReportServicer) POIs(ctx context.Context, f domain.POIFilter) (domain.POIReport, error) {
	return m.pois(ctx, f)
}

var _ handler.ReportServicer = (*mockReportServicer)(nil)

type mockUserServicer struct {
	list      func(ctx context.Context) ([]domain.User, error)
	setBanned func(ctx context.Context, id int64, banned bool) error
}

func (m *mockUserServicer) List(ctx context.Context) ([]domain.User, error) { return m.list(ctx) }
func (m *mockUserServicer) SetBanned(ctx context.Context, id int64, banned bool) error {
	return m.setBanned(ctx, id, banned)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

// ---- helpers ---------------------------------------------------------------

const (
	alice int64 = 1
	bob   int64 = 2
	root  int64 = 99
)

var testVerifier = func() *auth.Verifier {
	v, err := auth.NewVerifier("handler-test-secret")
	if err != nil {
		panic(err)
	}
	return v
}()

// deps groups the mocks a test wants wired; nil fields stay nil.
type deps struct {
	itineraries *mockItineraryServicer
	feedback    *mockFeedbackServicer
	pois        *mockPOIServicer
	reports     *mockReportServicer
	users       *mockUserServicer
}

// newHTTPHandler wires a Server into the generated chi router with the same
// auth middleware and error handlers main.go uses.
func newHTTPHandler(d deps) http.Handler {
	var (
		its handler.ItineraryServicer
		fbs handler.FeedbackServicer
		ps  handler.POIServicer
		rs  handler.ReportServicer
		us  handler.UserServicer
	)
	if d.itineraries != nil {
		its = d.itineraries
	}
	if d.feedback != nil {
		fbs = d.feedback
	}
	if d.pois != nil {
		ps = d.pois
	}
	if d.reports != nil {
		rs = d.reports
	}
	if d.users != nil {
		us = d.users
	}

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := handler.NewServer(its, fbs, ps, rs, us)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler(log),
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       chi.NewRouter(),
		Middlewares:      []gen.MiddlewareFunc{middleware.NewBearerAuth(testVerifier)},
		ErrorHandlerFunc: handler.RequestErrorHandler(log),
	})
}

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := testVerifier.Issue(auth.Identity{UserID: userID, Email: "u@example.com", Role: role}, time.Hour)
	require.NoError(t, err)
	return tok
}

func userToken(t *testing.T, userID int64) string { return tokenFor(t, userID, domain.RoleUser) }

// do sends a request through h. body may be nil, a string (sent verbatim) or
// any value to be JSON-encoded. An empty token sends no Authorization header.
func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorMessage decodes the standard failure envelope.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.False(t, body.Success)
	return body.Message
}
