package middleware

import (
	"errors"
	"net/http"
	"slices"

	"github.com/pkordes/route-planner/backend/internal/auth"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// Messages returned to clients that fail authentication.
const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
	msgAdminsOnly   = "Admins only"
)

// adminScope marks operations in the OpenAPI document that require the admin role.
const adminScope = "admin"

// NewBearerAuth returns a per-operation middleware for the generated router.
// Operations declared with bearerAuth security carry their scopes in the
// request context; anything without them is passed through untouched.
// On success the verified auth.Identity is stored in the request context.
func NewBearerAuth(v *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, secured := r.Context().Value(gen.BearerAuthScopes).([]string)
			if !secured {
				next.ServeHTTP(w, r)
				return
			}

			id, err := v.Verify(auth.BearerToken(r.Header.Get("Authorization")))
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				writeError(w, http.StatusUnauthorized, msgNoToken)
				return
			case err != nil:
				writeError(w, http.StatusForbidden, msgInvalidToken)
				return
			}

			if slices.Contains(scopes, adminScope) && !id.IsAdmin() {
				writeError(w, http.StatusForbidden, msgAdminsOnly)
				return
			}

			noteCaller(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}
