package validation

import (
	"strings"
	"testing"

	"storefront/internal/models"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		valid   bool
		wantMsg string
	}{
		{"local mobile", "01712345678", true, ""},
		{"international", "+8801712345678", true, ""},
		{"with spaces", "+1 555 123 4567", true, ""},
		{"with hyphens", "555-123-4567", true, ""},
		{"empty", "", false, "customer_phone is required"},
		{"whitespace only", "   ", false, "customer_phone is required"},
		{"letters", "call me", false, "customer_phone is not a valid phone number"},
		{"too short", "12345", false, "customer_phone is not a valid phone number"},
		{"trailing hyphen", "555-123-", false, "customer_phone is not a valid phone number"},
		{"double plus", "++8801712345678", false, "customer_phone is not a valid phone number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidatePhone(tt.phone)
			if valid != tt.valid {
				t.Errorf("ValidatePhone(%q) valid = %v, want %v", tt.phone, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidatePhone(%q) msg = %q, want %q", tt.phone, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateCustomerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "Rahim", true},
		{"unicode", "রহিম উদ্দিন", true},
		{"empty", "", false},
		{"blank", "  \t", false},
		{"too long", strings.Repeat("a", MaxNameLength+1), false},
		{"max length", strings.Repeat("a", MaxNameLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateCustomerName(tt.input)
			if valid != tt.valid {
				t.Errorf("ValidateCustomerName(%q) = %v, want %v", tt.input, valid, tt.valid)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	valid := func() *models.Order {
		return &models.Order{
			CustomerName:  "Karim",
			CustomerPhone: "01812345678",
			Products:      []models.OrderItem{{ProductID: 3, Quantity: 1, Price: 2499}},
			TotalAmount:   2499,
		}
	}

	tests := []struct {
		name    string
		mutate  func(o *models.Order)
		valid   bool
		wantMsg string
	}{
		{"valid order", func(o *models.Order) {}, true, ""},
		{"address is optional", func(o *models.Order) { o.CustomerAddress = "" }, true, ""},
		{"zero total allowed", func(o *models.Order) { o.TotalAmount = 0 }, true, ""},
		{"missing name", func(o *models.Order) { o.CustomerName = "" }, false, "customer_name is required"},
		{"missing phone", func(o *models.Order) { o.CustomerPhone = "" }, false, "customer_phone is required"},
		{"no products", func(o *models.Order) { o.Products = nil }, false, "products must contain at least one item"},
		{"missing product id", func(o *models.Order) { o.Products[0].ProductID = 0 }, false, "products[0].product_id is required"},
		{"zero quantity", func(o *models.Order) { o.Products[0].Quantity = 0 }, false, "products[0].quantity must be positive"},
		{"negative price", func(o *models.Order) { o.Products[0].Price = -1 }, false, "products[0].price must not be negative"},
		{"negative total", func(o *models.Order) { o.TotalAmount = -10 }, false, "total_amount must not be negative"},
		{"largest total allowed", func(o *models.Order) { o.TotalAmount = MaxTotalAmount }, true, ""},
		{"total overflows column", func(o *models.Order) { o.TotalAmount = 1e10 }, false, "total_amount is too large"},
		{"long address", func(o *models.Order) { o.CustomerAddress = strings.Repeat("x", MaxAddressLength+1) }, false, "customer_address must be at most 500 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(o)
			ok, msg := ValidateOrder(o)
			if ok != tt.valid {
				t.Errorf("ValidateOrder() valid = %v, want %v", ok, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateOrder() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"3f1c2b8e-9a4d-4c55-8a1e-2f0b7c9d1e23", true},
		{"session_1", true},
		{"", false},
		{"has space", false},
		{"../etc", false},
		{strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidateSessionID(tt.id); got != tt.want {
				t.Errorf("ValidateSessionID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidateChatMessage(t *testing.T) {
	if ok, _ := ValidateChatMessage("hello"); !ok {
		t.Error("ValidateChatMessage(hello) = false, want true")
	}
	if ok, msg := ValidateChatMessage(strings.Repeat("a", MaxMessageLength+1)); ok || msg == "" {
		t.Errorf("ValidateChatMessage(too long) = %v, %q", ok, msg)
	}
}
