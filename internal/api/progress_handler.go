package api

import (
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// ProgressHandler handles review progress requests.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// ListProgress handles GET /api/progress with an optional type filter.
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var (
		records []domain.UserProgress
		err     error
	)
	if rawType := r.URL.Query().Get("type"); rawType != "" {
		records, err = h.progressService.ListProgressByType(r.Context(), userID, domain.WordType(rawType))
	} else {
		records, err = h.progressService.ListProgress(r.Context(), userID)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// RecordReview handles POST /api/progress.
func (h *ProgressHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	progress, err := h.progressService.RecordReview(r.Context(), userID, req.WordID, *req.Correct)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
