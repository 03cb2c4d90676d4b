package middleware

import (
	"context"
	"net/http"
	"time"
)

// NewRequestTimeout returns a middleware that attaches a deadline of d to the
// request context. It never writes a response itself: downstream store calls
// observe the cancelled context and fail through the normal error path.
// A non-positive d disables the deadline.
func NewRequestTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
