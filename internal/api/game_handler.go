package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// GameHandler handles practice-game score and leaderboard requests.
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// SubmitScore handles POST /api/game/score.
func (h *GameHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req GameScoreRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	score, err := h.gameService.SubmitScore(r.Context(), userID, req.GameType, req.Score, req.Level)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, score)
}

// UserScores handles GET /api/game/scores/{gameType}.
func (h *GameHandler) UserScores(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	gameType := chi.URLParam(r, "gameType")
	scores, err := h.gameService.UserScores(r.Context(), userID, gameType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, scores)
}

// Leaderboard handles GET /api/game/leaderboard/{gameType}.
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameType := chi.URLParam(r, "gameType")
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "limit must be an integer")
		return
	}

	board, err := h.gameService.Leaderboard(r.Context(), gameType, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, board)
}
