package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nihongo-api/internal/catalog"
	"github.com/phrazzld/nihongo-api/internal/config"
	"github.com/phrazzld/nihongo-api/internal/generation"
	"github.com/phrazzld/nihongo-api/internal/platform/gemini"
	"github.com/phrazzld/nihongo-api/internal/platform/logger"
	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
	"github.com/phrazzld/nihongo-api/internal/platform/postgres"
	"github.com/phrazzld/nihongo-api/internal/service"
	"github.com/phrazzld/nihongo-api/internal/service/auth"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// application holds the fully wired dependency graph: configuration, the
// persistence backend, the optional text generator, and the service layer the
// HTTP handlers are built on.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB // nil when running on the in-memory backend

	userStore        store.UserStore
	wordStore        store.VocabularyStore
	cultureStore     store.CultureStore
	progressStore    store.ProgressStore
	quizStore        store.QuizStore
	gameScoreStore   store.GameScoreStore
	achievementStore store.AchievementStore
	chatStore        store.ChatStore

	generator generation.Generator // nil when no API key is configured

	jwtService auth.JWTService

	userService        service.UserService
	vocabularyService  service.VocabularyService
	progressService    service.ProgressService
	quizService        service.QuizService
	gameService        service.GameService
	achievementService service.AchievementService
	chatService        service.ChatService
}

// newApplication loads configuration and wires every component: logging,
// the storage backend (PostgreSQL when a database URL is configured, the
// in-memory store otherwise), the seeded catalog, the optional Gemini
// generator, and the service layer.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	app := &application{
		config: cfg,
		logger: log,
	}

	if err := app.setupStores(ctx); err != nil {
		return nil, err
	}

	if err := catalog.Load(ctx, app.wordStore, app.cultureStore, log); err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	if err := app.setupGenerator(ctx); err != nil {
		return nil, err
	}

	if err := app.setupServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *application) setupStores(ctx context.Context) error {
	if !app.config.Database.UsePostgres() {
		app.logger.Info("using in-memory storage backend")
		app.userStore = memstore.NewUserStore()
		app.wordStore = memstore.NewVocabularyStore()
		app.cultureStore = memstore.NewCultureStore()
		app.progressStore = memstore.NewProgressStore()
		app.quizStore = memstore.NewQuizStore()
		app.gameScoreStore = memstore.NewGameScoreStore()
		app.achievementStore = memstore.NewAchievementStore()
		app.chatStore = memstore.NewChatStore()
		return nil
	}

	app.logger.Info("using PostgreSQL storage backend")
	db, err := postgres.Connect(ctx, app.config.Database.URL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := postgres.MigrateUp(ctx, db, app.logger); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrating database: %w", err)
	}

	app.db = db
	app.userStore = postgres.NewUserStore(db)
	app.wordStore = postgres.NewVocabularyStore(db)
	app.cultureStore = postgres.NewCultureStore(db)
	app.progressStore = postgres.NewProgressStore(db)
	app.quizStore = postgres.NewQuizStore(db)
	app.gameScoreStore = postgres.NewGameScoreStore(db)
	app.achievementStore = postgres.NewAchievementStore(db)
	app.chatStore = postgres.NewChatStore(db)
	return nil
}

func (app *application) setupGenerator(ctx context.Context) error {
	if !app.config.LLM.UseGemini() {
		app.logger.Info("no Gemini API key configured, using static fallback responses")
		return nil
	}

	gen, err := gemini.NewGenerator(ctx, app.logger, app.config.LLM)
	if err != nil {
		return fmt.Errorf("creating Gemini generator: %w", err)
	}
	app.generator = gen
	app.logger.Info("Gemini generator configured", "model", app.config.LLM.ModelName)
	return nil
}

func (app *application) setupServices() error {
	jwtService, err := auth.NewJWTService(app.config.Auth)
	if err != nil {
		return fmt.Errorf("creating JWT service: %w", err)
	}
	app.jwtService = jwtService

	hasher := auth.NewBcryptHasher(app.config.Auth.BCryptCost)

	app.userService = service.NewUserService(app.userStore, hasher, app.logger)
	app.vocabularyService = service.NewVocabularyService(app.wordStore, app.cultureStore, app.logger)
	app.progressService = service.NewProgressService(app.progressStore, app.wordStore, app.userStore, app.logger)
	app.quizService = service.NewQuizService(app.quizStore, app.userStore, app.wordStore, app.generator, app.logger)
	app.gameService = service.NewGameService(app.gameScoreStore, app.userStore, app.logger)
	app.achievementService = service.NewAchievementService(app.achievementStore, app.logger)
	app.chatService = service.NewChatService(app.chatStore, app.generator, app.logger)
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
