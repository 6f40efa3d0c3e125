package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/planhub/backend/internal/config"
	"github.com/planhub/backend/internal/handlers"
	"github.com/planhub/backend/internal/metrics"
	"github.com/planhub/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	m *metrics.GatewayMetrics,
	healthHandler *handlers.HealthHandler,
	planHandler *handlers.PlanHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	contactHandler *handlers.ContactHandler,
	messageHandler *handlers.MessageHandler,
) {
	// Prometheus exposition, outside the rate-limited API group.
	app.Get("/metrics", m.Handler())

	api := app.Group("/api")
	api.Use(m.Middleware())

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/plans", planHandler.List)
	api.Post("/subscribe", subscriptionHandler.Subscribe)
	api.Post("/contact", contactHandler.Submit)

	// Admin message log, token-gated
	admin := api.Group("/admin", middleware.AdminRequired(cfg))
	admin.Get("/messages", messageHandler.List)
}
