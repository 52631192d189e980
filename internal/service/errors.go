// Package service provides application-level services for learner accounts,
// review progress, quizzes, games, achievements, the content catalogs, and
// the tutor chat.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates an authentication attempt with an
	// unknown email or a wrong password. The two cases are deliberately
	// indistinguishable. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
