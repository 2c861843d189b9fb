package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"storefront/internal/models"
)

// AddCartItem adds a product to a cart session and fills in the item's ID and
// AddedAt. It returns ErrProductNotFound if the product does not exist.
func (d *DB) AddCartItem(ctx context.Context, item *models.CartItem) error {
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO cart_items (session_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, added_at
	`, item.SessionID, item.ProductID, item.Quantity).Scan(&item.ID, &item.AddedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// ListCartItems returns the items in a cart session, oldest first.
func (d *DB) ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, session_id, product_id, quantity, added_at
		FROM cart_items WHERE session_id = $1
		ORDER BY added_at, id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.SessionID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RemoveCartItem deletes a single item from a cart session.
func (d *DB) RemoveCartItem(ctx context.Context, sessionID string, itemID int64) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND session_id = $2`, itemID, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart deletes every item in a cart session and returns how many were removed.
func (d *DB) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteStaleCartItems removes cart items added before cutoff.
func (d *DB) DeleteStaleCartItems(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM cart_items WHERE added_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
