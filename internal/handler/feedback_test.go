package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

func recordingFeedback(got *[]domain.Feedback) *mockFeedbackServicer {
	return &mockFeedbackServicer{
		record: func(_ context.Context, fb domain.Feedback) (domain.Feedback, error) {
			*got = append(*got, fb)
			return fb, nil
		},
	}
}

func TestRecordFeedback_200_AcceptedShapes(t *testing.T) {
	tests := []struct {
		body  string
		poi   int64
		liked bool
	}{
		{`{"poi_id":5,"liked":true}`, 5, true},
		{`{"poi_id":"5","liked":1}`, 5, true},
		{`{"poi_id":5,"liked":"0"}`, 5, false},
		{`{"poi_id":"12","liked":false}`, 12, false},
	}
	for _, tc := range tests {
		t.Run(tc.body, func(t *testing.T) {
			var got []domain.Feedback
			h := newHTTPHandler(deps{feedback: recordingFeedback(&got)})

			rec := do(t, h, http.MethodPost, "/api/user_feedback", tc.body, userToken(t, alice))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":true,"message":"Feedback saved successfully"}`, rec.Body.String())
			require.Len(t, got, 1)
			assert.Equal(t, domain.Feedback{UserID: alice, POIID: tc.poi, Liked: tc.liked}, got[0])
		})
	}
}

// Malformed shapes: nothing reaches the service.
func TestRecordFeedback_400_InvalidParameters(t *testing.T) {
	bodies := []string{
		`{"poi_id":"abc","liked":1}`,
		`{"poi_id":5,"liked":2}`,
		`{"poi_id":5,"liked":"yes"}`,
		`{"poi_id":5}`,
		`{"liked":true}`,
		`{"poi_id":null,"liked":true}`,
		`{"poi_id":1.5,"liked":true}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			var got []domain.Feedback
			h := newHTTPHandler(deps{feedback: recordingFeedback(&got)})

			rec := do(t, h, http.MethodPost, "/api/user_feedback", body, userToken(t, alice))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"Invalid parameters"}`, rec.Body.String())
			assert.Empty(t, got)
		})
	}
}

func TestRecordFeedback_400_UnknownPOI(t *testing.T) {
	svc := &mockFeedbackServicer{
		record: func(_ context.Context, _ domain.Feedback) (domain.Feedback, error) {
			return domain.Feedback{}, fmt.Errorf("service.FeedbackService.Record: %w: invalid parameters: %w", domain.ErrValidation, domain.ErrNotFound)
		},
	}

	rec := do(t, newHTTPHandler(deps{feedback: svc}), http.MethodPost, "/api/user_feedback", `{"poi_id":404,"liked":1}`, userToken(t, alice))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid parameters", errorMessage(t, rec))
}

func TestRecordFeedback_401(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{feedback: &mockFeedbackServicer{}}), http.MethodPost, "/api/user_feedback", `{"poi_id":1,"liked":1}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListFeedback_200(t *testing.T) {
	at := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	svc := &mockFeedbackServicer{
		list: func(_ context.Context, userID int64) ([]domain.Feedback, error) {
			require.Equal(t, bob, userID)
			return []domain.Feedback{{UserID: bob, POIID: 3, Liked: true, UpdatedAt: at}}, nil
		},
	}

	rec := do(t, newHTTPHandler(deps{feedback: svc}), http.MethodGet, "/api/user_feedback", nil, userToken(t, bob))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.FeedbackList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Feedback, 1)
	assert.Equal(t, int64(3), resp.Feedback[0].PoiId)
	assert.True(t, resp.Feedback[0].Liked)
	assert.True(t, at.Equal(resp.Feedback[0].UpdatedAt))
}
