package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
	"storefront/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// sampleProducts is the starter catalog used for development and demos.
var sampleProducts = []models.Product{
	{Name: "Men's T-Shirt", Price: 899, Description: "Comfortable cotton t-shirt", Stock: 50, Category: "clothing", ImageURL: "/images/tshirt.jpg"},
	{Name: "Wireless Headphones", Price: 2499, Description: "Noise cancelling headphones", Stock: 25, Category: "electronics", ImageURL: "/images/headphones.jpg"},
	{Name: "Smart Watch", Price: 3999, Description: "Fitness tracking smartwatch", Stock: 30, Category: "electronics", ImageURL: "/images/smartwatch.jpg"},
	{Name: "Running Shoes", Price: 1999, Description: "Comfortable running shoes", Stock: 40, Category: "footwear", ImageURL: "/images/shoes.jpg"},
	{Name: "Backpack", Price: 1299, Description: "Waterproof laptop backpack", Stock: 35, Category: "accessories", ImageURL: "/images/backpack.jpg"},
}

// SeedProducts inserts the sample catalog when the products table is empty.
// It returns the number of products inserted.
func (d *DB) SeedProducts(ctx context.Context) (int, error) {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range sampleProducts {
		p := sampleProducts[i]
		if err := d.CreateProduct(ctx, &p); err != nil {
			return i, fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	return len(sampleProducts), nil
}
