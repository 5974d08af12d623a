package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"nammai/backend/internal/api"
	"nammai/backend/internal/config"
	"nammai/backend/internal/database"
	app_errors "nammai/backend/internal/errors"
	"nammai/backend/internal/llm"
	"nammai/backend/internal/repository"
	"nammai/backend/internal/service"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if cfg.GeminiAPIKey == "" {
		slog.Error("GEMINI_API_KEY is not set; the provider cannot authenticate.", "error", app_errors.ErrConfiguration)
		return 1
	}

	db, err := database.InitDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.", "dsn", cfg.DatabaseDSN)

	router := buildRouter(cfg, db)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// buildRouter wires the provider, repository, services and handlers into the
// HTTP router. Split from Run so tests can stand up the full stack against a
// fake provider endpoint.
func buildRouter(cfg *config.Config, db *sql.DB) http.Handler {
	repo := repository.NewSQLiteRepository(db)
	geminiProvider := llm.NewGeminiProvider(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.ChatModel, cfg.ImageModel)

	sessionService := service.NewSessionService(repo, geminiProvider)
	previewService := service.NewPreviewService(repo)
	chatService := service.NewChatService(repo, geminiProvider, sessionService, previewService)

	chatHandler := api.NewChatHandler(sessionService, chatService)
	previewHandler := api.NewPreviewHandler(previewService)
	return api.NewRouter(chatHandler, previewHandler)
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
