package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vedavayu/clinic-backend/internal/api/http/handlers"
	"github.com/vedavayu/clinic-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Doctors        *handlers.DoctorsHandler
	Services       *handlers.ServicesHandler
	Banners        *handlers.BannersHandler
	Gallery        *handlers.GalleryHandler
	Partners       *handlers.PartnersHandler
	Statistics     *handlers.StatisticsHandler
	About          *handlers.AboutHandler
	AuthMiddleware *auth.Middleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes. Reads on content resources stay public
// through the auth gate's bypass; every mutation passes the gate and the
// admin check, in that order.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"activeStatus": true, "error": false, "message": "API is running"})
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)

	gate := cfg.AuthMiddleware.Authenticate
	admin := auth.RequireAdmin()

	users := api.Group("/users", gate, admin)
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	doctors := api.Group("/doctors", gate)
	doctors.Get("/", cfg.Doctors.List)
	doctors.Get("/:id", cfg.Doctors.Get)
	doctors.Post("/", admin, cfg.Doctors.Create)
	doctors.Put("/:id", admin, cfg.Doctors.Update)
	doctors.Delete("/:id", admin, cfg.Doctors.Delete)

	services := api.Group("/services", gate)
	services.Get("/", cfg.Services.List)
	services.Get("/:id", cfg.Services.Get)
	services.Post("/", admin, cfg.Services.Create)
	services.Put("/:id", admin, cfg.Services.Update)
	services.Delete("/:id", admin, cfg.Services.Delete)

	banners := api.Group("/banners", gate)
	banners.Get("/", cfg.Banners.List)
	banners.Get("/:id", cfg.Banners.Get)
	banners.Post("/", admin, cfg.Banners.Create)
	banners.Put("/:id", admin, cfg.Banners.Update)
	banners.Delete("/:id", admin, cfg.Banners.Delete)

	gallery := api.Group("/gallery", gate)
	gallery.Get("/", cfg.Gallery.List)
	gallery.Get("/:id", cfg.Gallery.Get)
	gallery.Post("/", admin, cfg.Gallery.Create)
	gallery.Delete("/:id", admin, cfg.Gallery.Delete)

	partners := api.Group("/partners", gate)
	partners.Get("/", cfg.Partners.List)
	partners.Get("/:id", cfg.Partners.Get)
	partners.Post("/", admin, cfg.Partners.Create)
	partners.Put("/:id", admin, cfg.Partners.Update)
	partners.Delete("/:id", admin, cfg.Partners.Delete)

	statistics := api.Group("/statistics", gate)
	statistics.Get("/", cfg.Statistics.Get)
	statistics.Put("/", admin, cfg.Statistics.Update)

	about := api.Group("/about", gate)
	about.Get("/", cfg.About.Get)
	about.Post("/", admin, cfg.About.Upsert)
}
