package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"storefront/internal/db"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	store ProductStore
	log   *zap.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(store ProductStore, log *zap.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

// List returns all products, optionally filtered by ?category=.
func (h *ProductHandler) List(c fiber.Ctx) error {
	products, err := h.store.ListProducts(c.Context(), c.Query("category"))
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch products")
	}
	return jsonSuccess(c, products)
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}

	product, err := h.store.GetProductByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		h.log.Error("failed to fetch product", zap.Int64("product_id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch product")
	}
	return jsonSuccess(c, product)
}
