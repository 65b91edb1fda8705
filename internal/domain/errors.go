package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers map this to the API's "Point not found." response.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation before it reaches the
// database (e.g. an empty or non-numeric item-id list, a missing image file).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")
