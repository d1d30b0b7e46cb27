package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrImport is returned when an uploaded backup document is malformed or is
// missing a required top-level field. Existing collections are left untouched
// when it is returned. Handlers should map this to HTTP 422.
var ErrImport = errors.New("invalid backup")
