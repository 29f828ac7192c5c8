package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_api/internal/api"
	"todo_api/internal/app/service"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
	"todo_api/internal/logger"
	"todo_api/internal/platform/cache"
	"todo_api/internal/platform/config"
	"todo_api/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// 2. Initialize Token Auth
	tokens := security.NewTokenAuth([]byte(cfg.JWTSecret), cfg.JWTExp())

	// 3. Initialize Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()
	logger.Info("database connected")

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	logger.Info("migrations applied")

	// 4. Initialize Redis (optional, rate limiter fails open without it)
	redisClient, err := cache.Connect(cfg)
	if err != nil {
		logger.Warn("redis unavailable, auth rate limiting disabled", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info("redis connected")
	}

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	todoRepo := repository.NewPgTodoRepository(db)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, tokens)
	todoService := service.NewTodoService(todoRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(cfg, tokens, authService, todoService, userRepo, db, redisClient)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", "port", cfg.APIPort, "error", err)
		}
	}()

	<-stop

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", "error", err)
	}
	logger.Info("server stopped gracefully")
}
