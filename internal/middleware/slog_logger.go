package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/route-planner/backend/internal/auth"
)

// accessEntry collects fields that inner middleware learn after the access
// logger has passed the request on. The bearer middleware records the
// verified caller here; the logger reads it once the handler returns.
type accessEntry struct {
	userID int64
}

type accessEntryKey struct{}

// noteCaller records the authenticated caller on the access log entry, if
// the request went through NewSlogLogger.
func noteCaller(ctx context.Context, id auth.Identity) {
	if e, ok := ctx.Value(accessEntryKey{}).(*accessEntry); ok {
		e.userID = id.UserID
	}
}

// NewSlogLogger returns a middleware that writes one structured line per
// request: method, path, matched route pattern, status, duration, request id
// and, for authenticated calls, the caller's user_id. 5xx responses are
// logged at error level.
//
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := &accessEntry{}
			if id, ok := auth.IdentityFrom(r.Context()); ok {
				entry.userID = id.UserID
			}
			r = r.WithContext(context.WithValue(r.Context(), accessEntryKey{}, entry))

			// WrapResponseWriter intercepts WriteHeader so we can read the
			// status code after the downstream handler has run.
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern(r),
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			}
			if entry.userID != 0 {
				attrs = append(attrs, "user_id", entry.userID)
			}

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "request", attrs...)
		})
	}
}

// routePattern returns the chi route that served r, or "unmatched" for 404s
// and requests that never reached a router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
