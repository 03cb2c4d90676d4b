package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// Fixed client-facing messages.
const (
	msgInvalidRequest    = "Invalid request"
	msgServerError       = "Server error"
	msgBodyTooLarge      = "Request body too large"
	msgItineraryNotFound = "Itinerary not found"
	msgInvalidParameters = "Invalid parameters"
	msgInvalidReportType = "Invalid report type"
	msgUserNotBannable   = "User not found or cannot ban admin"
)

// errorBody builds the standard failure envelope.
func errorBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Success: false, Message: message}
}

func badRequest(message string) gen.BadRequestJSONResponse {
	return gen.BadRequestJSONResponse(errorBody(message))
}

func notFound(message string) gen.NotFoundJSONResponse {
	return gen.NotFoundJSONResponse(errorBody(message))
}

// validationMessage extracts the client-facing part of a wrapped
// domain.ErrValidation and capitalises it.
// e.g. "service.ItineraryService.Create: validation error: invalid route data format"
// → "Invalid route data format"
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	// Anything wrapped after the message is internal detail.
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[:i]
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RequestErrorHandler handles failures that happen before a handler runs:
// malformed JSON bodies, oversize bodies and path or query parameters that
// cannot be bound. Use it for both the strict server's RequestErrorHandlerFunc
// and the router's ErrorHandlerFunc.
func RequestErrorHandler(log *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(msgBodyTooLarge))
			return
		}
		log.DebugContext(r.Context(), "rejected request",
			"path", r.URL.Path,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeJSON(w, http.StatusBadRequest, errorBody(msgInvalidRequest))
	}
}

// ResponseErrorHandler handles errors returned by handlers. Handlers map the
// expected domain errors themselves, so anything reaching here is logged in
// full and answered with a generic 500.
func ResponseErrorHandler(log *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody(msgServerError))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
