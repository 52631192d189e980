package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/nihongo-api/internal/api"
	apiMiddleware "github.com/phrazzld/nihongo-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Catalog reads, quiz generation, and leaderboards are public;
// everything touching a specific user's state requires a valid token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	userHandler := api.NewUserHandler(app.userService, app.progressService, app.achievementService, app.chatService)
	vocabHandler := api.NewVocabularyHandler(app.vocabularyService)
	progressHandler := api.NewProgressHandler(app.progressService)
	quizHandler := api.NewQuizHandler(app.quizService)
	gameHandler := api.NewGameHandler(app.gameService)
	chatHandler := api.NewChatHandler(app.chatService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/vocabulary", vocabHandler.ListVocabulary)
		r.Get("/vocabulary/random", vocabHandler.RandomVocabulary)
		r.Get("/culture", vocabHandler.ListCulture)

		r.Get("/quiz/generate", quizHandler.GenerateQuiz)
		r.Get("/game/leaderboard/{gameType}", gameHandler.Leaderboard)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/user", userHandler.GetUser)
			r.Get("/user/stats", userHandler.GetStats)
			r.Get("/user/achievements", userHandler.GetAchievements)
			r.Post("/user/achievements", userHandler.UnlockAchievement)
			r.Post("/user/streak", userHandler.UpdateStreak)

			r.Get("/progress", progressHandler.ListProgress)
			r.Post("/progress", progressHandler.RecordReview)
			r.Get("/progress/analysis", userHandler.AnalyzeProgress)

			r.Post("/quiz/submit", quizHandler.SubmitQuiz)
			r.Get("/quiz/history", quizHandler.QuizHistory)

			r.Post("/game/score", gameHandler.SubmitScore)
			r.Get("/game/scores/{gameType}", gameHandler.UserScores)

			r.Post("/chat", chatHandler.Send)
			r.Get("/chat/history", chatHandler.History)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
