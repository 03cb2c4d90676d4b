// Package middleware provides reusable HTTP middleware for the route planner API.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// corsMethods is the method surface of the API. Itineraries are created with
// POST and change status with PUT; nothing is patched or deleted.
var corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}

// corsPreflightMaxAge is how long browsers may cache a preflight result.
const corsPreflightMaxAge = 10 * time.Minute

// NewCORSHandler returns a middleware that applies CORS headers for the
// planner front-end origins. Bearer tokens travel in the Authorization header,
// so credentials (cookies) are never allowed. X-Request-Id is exposed so the
// client can quote it when reporting a failed save.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         int(corsPreflightMaxAge.Seconds()),
	})
	return c.Handler
}
