package geo

import "errors"

var (
	// ErrInvalidInput signals a non-finite scalar, a negative radius or a nil operand.
	ErrInvalidInput = errors.New("geo: invalid input")

	// ErrInvalidResult signals that a distance or angle has no finite value.
	ErrInvalidResult = errors.New("geo: invalid result")
)
