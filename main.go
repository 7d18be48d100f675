package main

import (
	"log/slog"
	"os"
	"time"

	api "dda-backend/cmd/api"
	authdomain "dda-backend/internal/auth/domain"
	authRepo "dda-backend/internal/auth/repository"
	authUsecase "dda-backend/internal/auth/usecase"
	"dda-backend/pkg/config"
	"dda-backend/pkg/database"
	"dda-backend/pkg/google"
	"dda-backend/pkg/metric"

	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.SessionToken{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	sessionRepo := authRepo.NewSessionTokenRepository(db)

	// Initialize the Google provider client
	googleService := google.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)

	// Initialize metrics
	collector := metric.NewCollector()

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, sessionRepo, googleService, cfg)
	userUsecaseInstance := authUsecase.NewUserUsecase(userRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, cfg, collector)

	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
