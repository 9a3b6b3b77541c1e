package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/core/services"
	"github.com/SscSPs/cekel_duit/internal/handlers"
	"github.com/SscSPs/cekel_duit/internal/middleware"
	"github.com/SscSPs/cekel_duit/internal/platform/config"
	"github.com/SscSPs/cekel_duit/internal/repositories/database/sqlite"
	"github.com/SscSPs/cekel_duit/internal/repositories/kvstore"
	"github.com/SscSPs/cekel_duit/internal/repositories/memory"
	"github.com/SscSPs/cekel_duit/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Cekel Duit API
// @version 1.0
// @description Local personal-finance backend: transactions, savings targets, reports and profile.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	medium, closeMedium, err := openMedium(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeMedium()

	repos := kvstore.NewRepositoryProvider(medium, logger)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidation(); err != nil {
		logger.Error("Failed to register validation rules", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.RateLimit(rateLimiter))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// openMedium returns the configured key-value medium and a function releasing it.
func openMedium(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.KeyValueMedium, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on exit")
		return memory.NewMedium(cfg.StorageQuotaBytes), func() {}, nil
	}

	logger.Info("Running database migrations...", slog.String("path", cfg.SQLiteDBPath))
	db, err := database.NewSQLiteDB(ctx, cfg.SQLiteDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := sqlite.RunMigrations(cfg.SQLiteDBPath, logger); err != nil {
		database.CloseSQLiteDB(db)
		return nil, nil, err
	}
	logger.Info("Database ready.")

	return sqlite.NewMedium(db, cfg.StorageQuotaBytes), func() { database.CloseSQLiteDB(db) }, nil
}
