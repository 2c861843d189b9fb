package models

import "time"

// CartItem is a product held in an anonymous shopping session.
type CartItem struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
