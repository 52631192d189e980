package api

import (
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// QuizHandler handles quiz generation, submission, and history requests.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GenerateQuiz handles GET /api/quiz/generate.
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	quizType := domain.QuizType(r.URL.Query().Get("type"))
	if quizType == "" {
		quizType = domain.QuizTypeHiragana
	}
	difficulty, err := queryInt(r, "difficulty", 1)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "difficulty must be an integer")
		return
	}
	count, err := queryInt(r, "count", 5)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "count must be an integer")
		return
	}

	questions, err := h.quizService.GenerateQuestions(r.Context(), quizType, difficulty, count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// SubmitQuiz handles POST /api/quiz/submit.
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req QuizSubmitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	quiz, err := h.quizService.SubmitQuiz(r.Context(), userID, req.Score, req.TotalQuestions, domain.QuizType(req.Type))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, quiz)
}

// QuizHistory handles GET /api/quiz/history.
func (h *QuizHandler) QuizHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	history, err := h.quizService.QuizHistory(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, history)
}
