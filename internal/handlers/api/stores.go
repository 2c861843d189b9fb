package api

import (
	"context"

	"storefront/internal/models"
)

// ProductStore reads the catalog.
type ProductStore interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderStore persists orders.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
}

// CartStore persists cart sessions.
type CartStore interface {
	AddCartItem(ctx context.Context, item *models.CartItem) error
	ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	RemoveCartItem(ctx context.Context, sessionID string, itemID int64) error
	ClearCart(ctx context.Context, sessionID string) (int64, error)
}

// OrderNotifier is told about every order that was stored.
type OrderNotifier interface {
	NotifyOrderPlaced(order *models.Order)
}

// IntentRecorder counts classified chat messages.
type IntentRecorder interface {
	RecordIntent(intent string)
}
