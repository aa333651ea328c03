package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/gradebook-api/internal/config"
	"github.com/noah-isme/gradebook-api/internal/handler"
	"github.com/noah-isme/gradebook-api/internal/middleware"
	"github.com/noah-isme/gradebook-api/internal/observability"
)

// Dependencies aggregates everything the router needs to wire the API surface.
type Dependencies struct {
	Config   config.Config
	Auth     *handler.AuthHandler
	Faculty  *handler.FacultyHandler
	Student  *handler.StudentHandler
	Marks    *handler.MarksHandler
	Activity *handler.ActivityHandler
	Seed     *handler.SeedHandler
}

// Register mounts all API routes onto the Fiber application.
func Register(app *fiber.App, deps Dependencies) {
	api := app.Group("/api")

	api.Get("/health", handler.HealthCheck(deps.Config))

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit("login", deps.Config.LoginRateMax, deps.Config.LoginRateWindow))
	deps.Auth.Register(auth)

	protected := middleware.JWTProtected(deps.Config.JWTSecret)

	faculty := api.Group("/faculty", protected)
	deps.Faculty.Register(faculty)

	students := api.Group("/students", protected)
	deps.Student.Register(students)

	marks := api.Group("/marks", protected)
	deps.Marks.Register(marks)

	activity := api.Group("/activity", protected)
	deps.Activity.Register(activity)

	if deps.Seed != nil {
		seed := api.Group("/seed")
		deps.Seed.Register(seed)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
