package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/musiconnect/musiconnect-api/internal/config"
	"github.com/musiconnect/musiconnect-api/internal/database"
	"github.com/musiconnect/musiconnect-api/internal/handlers"
	"github.com/musiconnect/musiconnect-api/internal/logging"
	"github.com/musiconnect/musiconnect-api/internal/middleware"
	"github.com/musiconnect/musiconnect-api/internal/repository"
	"github.com/musiconnect/musiconnect-api/internal/routes"
	"github.com/musiconnect/musiconnect-api/internal/security"
	"github.com/musiconnect/musiconnect-api/internal/services"
	"github.com/musiconnect/musiconnect-api/internal/token"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Genre and role catalogs are fixed; seeding is idempotent.
	if err := database.SeedCatalogs(); err != nil {
		slog.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	catalogRepo := repository.NewCatalogRepository(database.DB)
	bandRepo := repository.NewBandRepository(database.DB)
	collabRepo := repository.NewCollaborationRepository(database.DB)
	convRepo := repository.NewConvocationRepository(database.DB)
	favRepo := repository.NewFavoriteRepository(database.DB)
	followRepo := repository.NewFollowRepository(database.DB)
	postRepo := repository.NewPostRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)
	logRepo := repository.NewLogRepository(database.DB)

	// Services
	hasher := security.NewBcryptHasher()
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(userRepo, catalogRepo, hasher, issuer)
	userService := services.NewUserService(userRepo, bandRepo, catalogRepo)
	bandService := services.NewBandService(bandRepo, userRepo, catalogRepo, cfg.Policy)
	collabService := services.NewCollaborationService(collabRepo, userRepo, cfg.Policy)
	convService := services.NewConvocationService(convRepo, favRepo, userRepo)
	followService := services.NewFollowService(followRepo, userRepo, bandRepo)
	postService := services.NewPostService(postRepo, commentRepo, userRepo)
	chatService := services.NewChatService(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	userHandler := handlers.NewUserHandler(userService)
	bandHandler := handlers.NewBandHandler(bandService)
	collabHandler := handlers.NewCollaborationHandler(collabService)
	convHandler := handlers.NewConvocationHandler(convService)
	followHandler := handlers.NewFollowHandler(followService)
	postHandler := handlers.NewPostHandler(postService)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(logRepo)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB,
		authHandler, healthHandler, userHandler, bandHandler,
		collabHandler, convHandler, followHandler, postHandler,
		chatHandler, adminHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
