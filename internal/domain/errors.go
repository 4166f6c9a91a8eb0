package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown platform).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a unique key would be duplicated
// (e.g. registering an existing email, reusing a saved-set name).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when an owner-scoped operation lacks a valid
// caller identity. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
