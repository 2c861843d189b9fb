package db

import "errors"

// Domain-level database error sentinels.
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
)

// Postgres error codes the storage layer maps to sentinels.
const (
	pgForeignKeyViolation = "23503"
)
