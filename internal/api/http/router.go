package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/api/http/handlers"
	"github.com/brokerdesk/brokerage-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Payments       *handlers.PaymentsHandler
	Employees      *handlers.EmployeesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes. Every /api route except login passes the auth guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	login := []fiber.Handler{cfg.Auth.Login}
	if cfg.LoginLimiter != nil {
		login = append([]fiber.Handler{cfg.LoginLimiter}, login...)
	}
	api.Post("/login", login...)

	guard := cfg.AuthMiddleware.Handle

	api.Get("/data", guard, cfg.Payments.List)
	api.Post("/data", guard, cfg.Payments.Create)
	api.Put("/data/:id", guard, cfg.Payments.Update)

	api.Get("/employees", guard, cfg.Employees.List)
	api.Post("/employees", guard, cfg.Employees.Create)
	api.Put("/employees/:id", guard, cfg.Employees.Update)
	api.Delete("/employees/:id", guard, cfg.Employees.Delete)

	api.Get("/reports/payments", guard, cfg.Reports.Payments)
	api.Get("/reports/summary", guard, cfg.Reports.Summary)
}
