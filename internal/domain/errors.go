package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database, or exists but belongs to another
// user. The two cases are deliberately indistinguishable to callers.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. route data is not an array, unknown status value).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrStorage wraps every database failure that is not a plain "no rows"
// (connection loss, constraint violation, deadline exceeded).
// Handlers log the detail and return a generic HTTP 500.
var ErrStorage = errors.New("storage error")
