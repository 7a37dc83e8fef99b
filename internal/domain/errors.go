package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidLocation signals a location that fails validation.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrInvalidQuery signals malformed query parameters (limits, radii, filters).
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnknownCategory signals a category missing from the registry.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCategoryCycle signals a category that is its own ancestor.
	ErrCategoryCycle = errors.New("category cycle")
)
