package api

import (
	"github.com/gofiber/fiber/v3"

	"storefront/internal/config"
)

// HomeHandler serves the service banner and the API health check.
type HomeHandler struct {
	cfg *config.Config
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{cfg: cfg}
}

// Index describes the service and its main endpoints.
func (h *HomeHandler) Index(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"message": h.cfg.SiteTitle + " API is running!",
		"endpoints": fiber.Map{
			"products":     "/api/products",
			"create_order": "/api/orders",
			"cart":         "/api/cart",
			"bot_chat":     "/api/bot/chat",
			"metrics":      "/metrics",
		},
	})
}

// Health reports that the API process is up.
func (h *HomeHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": h.cfg.ServiceName,
	})
}
