package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"storefront/internal/db"
	"storefront/internal/models"
	"storefront/internal/validation"
)

// OrderHandler takes and looks up orders.
type OrderHandler struct {
	store    OrderStore
	notifier OrderNotifier
	log      *zap.Logger
}

// NewOrderHandler creates a new order handler. notifier may be nil.
func NewOrderHandler(store OrderStore, notifier OrderNotifier, log *zap.Logger) *OrderHandler {
	return &OrderHandler{store: store, notifier: notifier, log: log}
}

// Create stores a new pending order.
func (h *OrderHandler) Create(c fiber.Ctx) error {
	var body struct {
		CustomerName    string             `json:"customer_name"`
		CustomerPhone   string             `json:"customer_phone"`
		CustomerAddress string             `json:"customer_address"`
		Products        []models.OrderItem `json:"products"`
		TotalAmount     *float64           `json:"total_amount"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.TotalAmount == nil {
		return jsonError(c, fiber.StatusBadRequest, "total_amount is required")
	}

	order := &models.Order{
		CustomerName:    body.CustomerName,
		CustomerPhone:   body.CustomerPhone,
		CustomerAddress: body.CustomerAddress,
		Products:        body.Products,
		TotalAmount:     *body.TotalAmount,
		Status:          models.OrderStatusPending,
	}
	if valid, msg := validation.ValidateOrder(order); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := h.store.CreateOrder(c.Context(), order); err != nil {
		h.log.Error("failed to create order", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to create order")
	}

	h.log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int("items", order.ItemCount()),
		zap.Float64("total_amount", order.TotalAmount),
	)

	if h.notifier != nil {
		h.notifier.NotifyOrderPlaced(order)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data": models.OrderCreatedResponse{
			OrderID: order.ID,
			Status:  order.Status,
			Message: "Order created successfully!",
		},
	})
}

// Get returns an order by ID so customers can check its status.
func (h *OrderHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid order id")
	}

	order, err := h.store.GetOrderByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return jsonError(c, fiber.StatusNotFound, "order not found")
		}
		h.log.Error("failed to fetch order", zap.Int64("order_id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch order")
	}
	return jsonSuccess(c, order)
}
