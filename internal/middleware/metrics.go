package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/route-planner/backend/internal/metrics"
)

// NewMetrics returns a middleware that records request count and latency.
// Requests are labelled by the matched chi route pattern rather than the raw
// path so that ids do not explode label cardinality.
func NewMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			metrics.RecordHTTPRequest(r.Method, routePattern(r), ww.Status(), time.Since(start))
		})
	}
}
