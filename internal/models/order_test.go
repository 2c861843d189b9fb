package models

import "testing"

func TestOrder_IsPending(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"pending status", OrderStatusPending, true},
		{"confirmed status", OrderStatusConfirmed, false},
		{"shipped status", OrderStatusShipped, false},
		{"cancelled status", OrderStatusCancelled, false},
		{"empty status", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{Status: tt.status}
			if got := order.IsPending(); got != tt.expected {
				t.Errorf("IsPending() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOrder_ItemCount(t *testing.T) {
	order := &Order{Products: []OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 4, Quantity: 1},
	}}
	if got := order.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}

	empty := &Order{}
	if got := empty.ItemCount(); got != 0 {
		t.Errorf("ItemCount() on empty order = %d, want 0", got)
	}
}

func TestProduct_InStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		qty      int
		expected bool
	}{
		{"enough stock", 10, 3, true},
		{"exact stock", 3, 3, true},
		{"not enough stock", 2, 3, false},
		{"zero quantity", 10, 0, false},
		{"negative quantity", 10, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock}
			if got := p.InStock(tt.qty); got != tt.expected {
				t.Errorf("InStock(%d) = %v, want %v", tt.qty, got, tt.expected)
			}
		})
	}
}

func TestOrderStatusConstants(t *testing.T) {
	if OrderStatusPending != "pending" {
		t.Errorf("OrderStatusPending = %q, want %q", OrderStatusPending, "pending")
	}
	if OrderStatusCancelled != "cancelled" {
		t.Errorf("OrderStatusCancelled = %q, want %q", OrderStatusCancelled, "cancelled")
	}
}
