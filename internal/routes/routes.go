package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/musiconnect/musiconnect-api/internal/config"
	"github.com/musiconnect/musiconnect-api/internal/handlers"
	"github.com/musiconnect/musiconnect-api/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	bandHandler *handlers.BandHandler,
	collabHandler *handlers.CollaborationHandler,
	convHandler *handlers.ConvocationHandler,
	followHandler *handlers.FollowHandler,
	postHandler *handlers.PostHandler,
	chatHandler *handlers.ChatHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	jwt := middleware.JWTProtected(cfg)

	// Users
	users := api.Group("/users", jwt)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/availability", userHandler.UpdateAvailability)
	users.Delete("/:id", userHandler.Delete)

	// Bands
	bands := api.Group("/bands", jwt)
	bands.Post("/", bandHandler.Create)
	bands.Get("/", bandHandler.List)
	bands.Get("/:id", bandHandler.Get)
	bands.Put("/:id", bandHandler.Update)
	bands.Post("/:id/members", bandHandler.AddMember)
	bands.Get("/:id/members", bandHandler.ListMembers)
	bands.Get("/:id/members/:memberId", bandHandler.GetMember)
	bands.Delete("/:id/:adminId", bandHandler.Delete)

	// Collaborations
	collabs := api.Group("/collaborations", jwt)
	collabs.Post("/", collabHandler.Create)
	collabs.Get("/", collabHandler.List)
	collabs.Get("/active", collabHandler.ListActive)
	collabs.Get("/statuses", collabHandler.ListStatuses)
	collabs.Get("/creator/:name", collabHandler.ListByCreator)
	collabs.Get("/:id", collabHandler.Get)
	collabs.Put("/:id", collabHandler.Update)
	collabs.Post("/:id/collaborators", collabHandler.AddCollaborator)
	collabs.Get("/:id/collaborators", collabHandler.ListCollaborators)
	collabs.Delete("/:id/:userId", collabHandler.Delete)

	// Convocations
	convs := api.Group("/convocations", jwt)
	convs.Post("/", convHandler.Create)
	convs.Get("/", convHandler.List)
	convs.Get("/active", convHandler.ListActive)
	convs.Get("/favorites/:userId", convHandler.ListFavorites)
	convs.Post("/favorites", convHandler.MarkFavorite)
	convs.Delete("/favorites", convHandler.UnmarkFavorite)
	convs.Get("/:id", convHandler.Get)
	convs.Put("/:id", convHandler.Update)
	convs.Delete("/:id/:userId", convHandler.Delete)

	// Follows
	follows := api.Group("/follows", jwt)
	follows.Post("/", followHandler.Create)
	follows.Get("/:userId", followHandler.ListFollowed)
	follows.Delete("/", followHandler.Delete)

	// Posts and comments
	posts := api.Group("/posts", jwt)
	posts.Post("/", postHandler.Create)
	posts.Get("/", postHandler.List)
	posts.Get("/:id", postHandler.Get)
	posts.Put("/:id", postHandler.Update)
	posts.Delete("/:id/:userId", postHandler.Delete)
	posts.Post("/:id/comments", postHandler.CreateComment)
	posts.Get("/:id/comments", postHandler.ListComments)
	posts.Put("/comments/:commentId", postHandler.UpdateComment)
	posts.Delete("/comments/:commentId/:userId", postHandler.DeleteComment)

	// AI chat relay
	api.Post("/chat", jwt, chatHandler.Ask)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Get("/logs", adminHandler.ListLogs)
}
