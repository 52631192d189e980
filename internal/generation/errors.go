package generation

import "errors"

// Sentinel errors for the generation package. Callers classify failures with
// errors.Is and decide whether to retry or fall back to static content.
var (
	// ErrInvalidConfig indicates the generator was constructed with missing
	// or malformed configuration, such as a blank API key.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrTransientFailure indicates a failure that may succeed on retry,
	// such as a timeout, rate limit, or upstream unavailability.
	ErrTransientFailure = errors.New("transient generation failure")

	// ErrInvalidResponse indicates the model returned output that could not
	// be parsed into the expected structure.
	ErrInvalidResponse = errors.New("invalid model response")

	// ErrContentBlocked indicates the provider refused to generate content
	// for the given prompt. Never retried.
	ErrContentBlocked = errors.New("content blocked by provider")
)

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientFailure)
}
