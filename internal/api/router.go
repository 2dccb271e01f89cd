package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/api/handler"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/api/middleware"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/service"
	mongodb "github.com/thapelomagqazana/t3-skeleton-ddd/internal/infrastructure/db/mongo"
)

// RouterConfig carries everything the router needs to assemble the service.
type RouterConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	Dev        bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Dev)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewHashService(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, hasher, tokens, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authGuard := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut, authGuard)

	// --- User routes ---
	users := e.Group("/users", authGuard)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
