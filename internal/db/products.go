package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/internal/models"
)

// productColumns is the standard column list for product queries.
const productColumns = `id, name, price, description, stock, category, image_url`

// scanProduct scans a row into a Product struct.
func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.Stock,
		&p.Category,
		&p.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanProducts scans multiple rows into a slice of Products.
func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.Stock,
			&p.Category,
			&p.ImageURL,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateProduct inserts a product and fills in its ID.
func (d *DB) CreateProduct(ctx context.Context, p *models.Product) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO products (name, price, description, stock, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.Name, p.Price, p.Description, p.Stock, p.Category, p.ImageURL).Scan(&p.ID)
}

// ListProducts returns all products, or only those in category when it is
// non-empty, ordered by ID.
func (d *DB) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		rows, err := d.Pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return scanProducts(rows)
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE LOWER(category) = LOWER($1)
		ORDER BY id
	`, category)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// GetProductByID retrieves a product by ID.
func (d *DB) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}
