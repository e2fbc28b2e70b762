// Package devserver exposes the health-tracking REST surface over an
// in-process API client, giving the HTTP client implementation a real
// target during local development.
package devserver

import (
	"context"
	"log/slog"

	"vitalog/internal/api"
	"vitalog/internal/config"
	"vitalog/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds the dev server's dependencies and provides handlers.
type Server struct {
	config *config.Config
	client api.Client
	app    *fiber.App
	log    *observability.Logger
}

// NewServer creates a dev server fronting the given client.
func NewServer(cfg *config.Config, client api.Client) *Server {
	return &Server{
		config: cfg,
		client: client,
		log:    observability.GlobalLogger,
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Local frontends talk to this server directly during development.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	app.Post("/login", s.Login)
	app.Post("/register", s.Register)

	user := app.Group("/user", s.authRequired())
	user.Get("/profile", s.GetProfile)
	user.Get("/bmi", s.GetBMI)

	waters := app.Group("/waters", s.authRequired())
	waters.Post("/", s.AddWater)
	waters.Get("/", s.GetAllWater)
	waters.Patch("/:id", s.UpdateWater)
	waters.Delete("/:id", s.DeleteWater)

	// Sleep records cannot be deleted over the wire; clients treat deletion
	// as an absent capability.
	sleeps := app.Group("/sleeps", s.authRequired())
	sleeps.Post("/", s.AddSleep)
	sleeps.Get("/", s.GetAllSleep)
	sleeps.Patch("/:id", s.UpdateSleep)

	activities := app.Group("/activities", s.authRequired())
	activities.Post("/", s.AddActivity)
	activities.Get("/", s.GetAllActivity)
	activities.Patch("/:id", s.UpdateActivity)
	activities.Delete("/:id", s.DeleteActivity)

	// Custom tracking accepts requests with or without a bearer token. There
	// is no category delete route.
	category := app.Group("/category", s.authOptional())
	category.Get("/list", s.GetCustomCategories)
	category.Post("/create", s.CreateCustomCategory)
	category.Get("/:category/list", s.GetCustomData)
	category.Post("/:category/add", s.AddCustomItem)
	category.Patch("/:category/:item", s.UpdateCustomItem)
	category.Delete("/:category/:item", s.DeleteCustomItem)
}

// App builds the configured Fiber application.
func (s *Server) App() *fiber.App {
	if s.app == nil {
		s.app = fiber.New(fiber.Config{
			AppName: "Vitalog Dev API",
		})
		s.SetupMiddleware(s.app)
		s.SetupRoutes(s.app)
	}
	return s.app
}

// Listen starts serving on the configured port.
func (s *Server) Listen() error {
	s.log.Info("dev server listening", slog.String("port", s.config.Port))
	return s.App().Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app == nil {
		return nil
	}
	return s.app.ShutdownWithContext(ctx)
}

// HealthCheck reports liveness.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
