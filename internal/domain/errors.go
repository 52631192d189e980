package domain

import "errors"

// Common validation errors shared across entities.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Entity-specific errors wrap it so callers can match broadly.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an entity references a non-positive ID.
	ErrInvalidID = errors.New("invalid ID")
)
