package api

import (
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// UserHandler handles learner account and statistics requests.
type UserHandler struct {
	userService        service.UserService
	progressService    service.ProgressService
	achievementService service.AchievementService
	chatService        service.ChatService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userService service.UserService,
	progressService service.ProgressService,
	achievementService service.AchievementService,
	chatService service.ChatService,
) *UserHandler {
	return &UserHandler{
		userService:        userService,
		progressService:    progressService,
		achievementService: achievementService,
		chatService:        chatService,
	}
}

// GetUser handles GET /api/user.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// GetStats handles GET /api/user/stats.
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.progressService.GetStats(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetAchievements handles GET /api/user/achievements.
func (h *UserHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	achievements, err := h.achievementService.UserAchievements(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, achievements)
}

// UnlockAchievement handles POST /api/user/achievements.
func (h *UserHandler) UnlockAchievement(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req AchievementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	achievement, err := h.achievementService.Unlock(r.Context(), userID,
		req.Type, req.Title, req.Description, req.IconName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, achievement)
}

// UpdateStreak handles POST /api/user/streak.
func (h *UserHandler) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.UpdateStreak(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// AnalyzeProgress handles GET /api/progress/analysis.
func (h *UserHandler) AnalyzeProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.progressService.GetStats(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	analysis, err := h.chatService.AnalyzeProgress(r.Context(), stats)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"analysis": analysis,
		"stats":    stats,
	})
}
