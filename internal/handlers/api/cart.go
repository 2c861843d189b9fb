package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/db"
	"storefront/internal/models"
	"storefront/internal/validation"
)

// maxCartQuantity caps a single cart line.
const maxCartQuantity = 99

// CartHandler manages anonymous cart sessions.
type CartHandler struct {
	store CartStore
	log   *zap.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(store CartStore, log *zap.Logger) *CartHandler {
	return &CartHandler{store: store, log: log}
}

// Add puts a product in a cart. A new session id is issued when the request
// has none.
func (h *CartHandler) Add(c fiber.Ctx) error {
	var body struct {
		SessionID string `json:"session_id"`
		ProductID int64  `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.SessionID == "" {
		body.SessionID = uuid.NewString()
	} else if !validation.ValidateSessionID(body.SessionID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid session_id")
	}
	if body.ProductID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "product_id is required")
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	if body.Quantity < 0 || body.Quantity > maxCartQuantity {
		return jsonError(c, fiber.StatusBadRequest, "quantity must be between 1 and 99")
	}

	item := &models.CartItem{
		SessionID: body.SessionID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	}
	if err := h.store.AddCartItem(c.Context(), item); err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		h.log.Error("failed to add cart item", zap.String("session_id", item.SessionID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to add to cart")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   item,
	})
}

// List returns the items in a cart session.
func (h *CartHandler) List(c fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if !validation.ValidateSessionID(sessionID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid session_id")
	}

	items, err := h.store.ListCartItems(c.Context(), sessionID)
	if err != nil {
		h.log.Error("failed to list cart", zap.String("session_id", sessionID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch cart")
	}
	return jsonSuccess(c, models.CartResponse{SessionID: sessionID, Items: items})
}

// RemoveItem deletes one line from a cart session.
func (h *CartHandler) RemoveItem(c fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if !validation.ValidateSessionID(sessionID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid session_id")
	}
	itemID, err := strconv.ParseInt(c.Params("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid item id")
	}

	if err := h.store.RemoveCartItem(c.Context(), sessionID, itemID); err != nil {
		if errors.Is(err, db.ErrCartItemNotFound) {
			return jsonError(c, fiber.StatusNotFound, "cart item not found")
		}
		h.log.Error("failed to remove cart item", zap.String("session_id", sessionID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to remove cart item")
	}
	return jsonSuccess(c, fiber.Map{"removed": 1})
}

// Clear empties a cart session.
func (h *CartHandler) Clear(c fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if !validation.ValidateSessionID(sessionID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid session_id")
	}

	n, err := h.store.ClearCart(c.Context(), sessionID)
	if err != nil {
		h.log.Error("failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear cart")
	}
	return jsonSuccess(c, fiber.Map{"removed": n})
}
