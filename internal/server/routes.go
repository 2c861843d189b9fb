package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/bot"
	"storefront/internal/handlers"
	"storefront/internal/handlers/api"
)

// Store is everything the routes need from persistence. *db.DB implements it.
type Store interface {
	api.ProductStore
	api.OrderStore
	api.CartStore
	handlers.Pinger
}

// Deps are the collaborators wired into the routes.
type Deps struct {
	Store    Store
	Engine   *bot.Engine
	Recorder api.IntentRecorder
	Notifier api.OrderNotifier
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	homeHandler := api.NewHomeHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.Store)
	productHandler := api.NewProductHandler(deps.Store, s.Log)
	orderHandler := api.NewOrderHandler(deps.Store, deps.Notifier, s.Log)
	cartHandler := api.NewCartHandler(deps.Store, s.Log)
	chatHandler := api.NewChatHandler(deps.Engine, deps.Recorder, s.Log)

	// Service banner and probes
	s.App.Get("/", homeHandler.Index)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := s.App.Group("/api", s.rateLimiter())
	apiGroup.Get("/health", homeHandler.Health)

	// Catalog
	apiGroup.Get("/products", productHandler.List)
	apiGroup.Get("/products/:id", productHandler.Get)

	// Orders
	apiGroup.Post("/orders", orderHandler.Create)
	apiGroup.Get("/orders/:id", orderHandler.Get)

	// Cart
	apiGroup.Post("/cart", cartHandler.Add)
	apiGroup.Get("/cart/:session_id", cartHandler.List)
	apiGroup.Delete("/cart/:session_id", cartHandler.Clear)
	apiGroup.Delete("/cart/:session_id/items/:item_id", cartHandler.RemoveItem)

	// Assistant
	apiGroup.Post("/bot/chat", chatHandler.Chat)
}
