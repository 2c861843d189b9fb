package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront/internal/models"
)

// CreateOrder inserts an order. Status defaults to pending; ID and CreatedAt
// are filled in from the database.
func (d *DB) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	products, err := json.Marshal(o.Products)
	if err != nil {
		return fmt.Errorf("failed to encode order products: %w", err)
	}

	return d.Pool.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_phone, customer_address, products, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		o.CustomerName,
		o.CustomerPhone,
		o.CustomerAddress,
		products,
		o.TotalAmount,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt)
}

// GetOrderByID retrieves an order by ID.
func (d *DB) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	var products []byte
	err := d.Pool.QueryRow(ctx, `
		SELECT id, customer_name, customer_phone, customer_address, products, total_amount, status, created_at
		FROM orders WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerAddress,
		&products,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(products, &o.Products); err != nil {
		return nil, fmt.Errorf("failed to decode order products: %w", err)
	}
	return &o, nil
}
