package server

import (
	"context"
	"log"
	"strings"

	"brandkit-admin-be/internal/bootstrap"
	"brandkit-admin-be/internal/config"
	"brandkit-admin-be/internal/controller"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
		AppName:   cfg.Telemetry.ServiceName,
	})

	// Fiber rejects credentials combined with a wildcard origin.
	allowCredentials := strings.TrimSpace(cfg.App.CorsAllowedOrigins) != "*"
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: allowCredentials,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))

	app.Use(serverutils.ErrorHandlerMiddleware(controller.StatusForError))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(container.MetricsRegistry, promhttp.HandlerOpts{})))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.SystemController.RegisterRoutes(api)
	c.TopicController.RegisterRoutes(api)
	c.EntityController.RegisterRoutes(api)
	c.ProductTypeController.RegisterRoutes(api)
	c.EntityProductController.RegisterRoutes(api)

	api.Get("/ws/generation", websocket.Handler(c.WebSocketHub))
}
