// Package api implements the HTTP transport layer: request models, handlers,
// and the mapping from service errors to status codes. Handlers never see
// credentials or tokens beyond this package; services receive an
// already-authenticated user ID.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The ID is placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// requireUserID extracts the authenticated user ID or writes a 401 response.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
	}
	return userID, ok
}

// queryInt parses an integer query parameter, returning fallback when the
// parameter is absent. A present but malformed value is an error.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return value, nil
}
