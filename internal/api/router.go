package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"todo_api/internal/api/handler"
	"todo_api/internal/api/middleware"
	"todo_api/internal/app/service"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
	"todo_api/internal/platform/config"
)

func NewRouter(
	cfg *config.Config,
	tokens *security.TokenAuth,
	authService *service.AuthService,
	todoService *service.TodoService,
	userRepo repository.UserRepository,
	db *sql.DB,
	redisClient *redis.Client,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.Metrics)

	// Verifies a bearer token when present, puts claims in context.
	// Authenticator below decides whether the request may proceed.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	healthHandler := handler.NewHealthHandler(db)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public, rate limited)
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", func(auth chi.Router) {
			auth.Use(middleware.RateLimit(redisClient, cfg.AuthRateLimit, cfg.AuthRateWindow()))
			authHandler.RegisterRoutes(auth)
		})

		// Todo routes (authenticated)
		todoHandler := handler.NewTodoHandler(todoService)
		v1.Route("/todos", func(todos chi.Router) {
			todos.Use(middleware.Authenticator(userRepo))
			todoHandler.RegisterRoutes(todos)
		})
	})

	return r
}
