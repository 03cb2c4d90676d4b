// Package metrics holds the Prometheus collectors exported at /metrics.
// Collectors are registered on the default registry via promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, chi route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_planner_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "route_planner_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ItinerariesCreated counts successfully saved itineraries.
	ItinerariesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "route_planner_itineraries_created_total",
			Help: "Total number of itineraries saved",
		},
	)

	// ItineraryStatusUpdates counts applied status changes by target status.
	ItineraryStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_planner_itinerary_status_updates_total",
			Help: "Total number of itinerary status updates by target status",
		},
		[]string{"status"},
	)

	// FeedbackRecorded counts feedback upserts by verdict ("like" or "dislike").
	FeedbackRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_planner_feedback_recorded_total",
			Help: "Total number of POI feedback submissions",
		},
		[]string{"verdict"},
	)

	// UserBanChanges counts admin moderation actions by action ("ban" or "unban").
	UserBanChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_planner_user_ban_changes_total",
			Help: "Total number of user ban and unban actions",
		},
		[]string{"action"},
	)
)

// RecordHTTPRequest records one finished request.
// route should be the chi route pattern, not the raw path, to bound cardinality.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFeedback records one feedback upsert.
func RecordFeedback(liked bool) {
	verdict := "dislike"
	if liked {
		verdict = "like"
	}
	FeedbackRecorded.WithLabelValues(verdict).Inc()
}

// RecordBanChange records one applied ban or unban.
func RecordBanChange(banned bool) {
	action := "unban"
	if banned {
		action = "ban"
	}
	UserBanChanges.WithLabelValues(action).Inc()
}
