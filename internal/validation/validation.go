package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"storefront/internal/models"
)

// PhonePattern accepts an optional leading +, then digits with optional
// spaces or hyphens between them.
var PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,18}[0-9]$`)

// SessionIDPattern defines the valid cart session id format.
var SessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Field length limits.
const (
	MaxNameLength    = 200
	MaxAddressLength = 500
	MaxOrderItems    = 100
	MaxMessageLength = 2000
)

// MaxTotalAmount is the largest order total the NUMERIC(12, 2) column holds.
const MaxTotalAmount = 9999999999.99

// ValidateCustomerName checks that a customer name is present and not too long.
func ValidateCustomerName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "customer_name is required"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return false, fmt.Sprintf("customer_name must be at most %d characters", MaxNameLength)
	}
	return true, ""
}

// ValidatePhone checks that a phone number is present and looks like one.
func ValidatePhone(phone string) (bool, string) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false, "customer_phone is required"
	}
	if !PhonePattern.MatchString(phone) {
		return false, "customer_phone is not a valid phone number"
	}
	return true, ""
}

// ValidateOrderItems checks that an order has at least one well-formed line.
func ValidateOrderItems(items []models.OrderItem) (bool, string) {
	if len(items) == 0 {
		return false, "products must contain at least one item"
	}
	if len(items) > MaxOrderItems {
		return false, fmt.Sprintf("products must contain at most %d items", MaxOrderItems)
	}
	for i, item := range items {
		if item.ProductID <= 0 {
			return false, fmt.Sprintf("products[%d].product_id is required", i)
		}
		if item.Quantity <= 0 {
			return false, fmt.Sprintf("products[%d].quantity must be positive", i)
		}
		if item.Price < 0 {
			return false, fmt.Sprintf("products[%d].price must not be negative", i)
		}
	}
	return true, ""
}

// ValidateOrder checks every customer-supplied field of a new order.
func ValidateOrder(o *models.Order) (bool, string) {
	if ok, msg := ValidateCustomerName(o.CustomerName); !ok {
		return false, msg
	}
	if ok, msg := ValidatePhone(o.CustomerPhone); !ok {
		return false, msg
	}
	if utf8.RuneCountInString(o.CustomerAddress) > MaxAddressLength {
		return false, fmt.Sprintf("customer_address must be at most %d characters", MaxAddressLength)
	}
	if ok, msg := ValidateOrderItems(o.Products); !ok {
		return false, msg
	}
	if o.TotalAmount < 0 {
		return false, "total_amount must not be negative"
	}
	if o.TotalAmount > MaxTotalAmount {
		return false, "total_amount is too large"
	}
	return true, ""
}

// ValidateSessionID checks a cart session id supplied by a client.
func ValidateSessionID(id string) bool {
	return SessionIDPattern.MatchString(id)
}

// ValidateChatMessage checks a chat message is within the accepted length.
// Empty messages are rejected by the caller with its own error.
func ValidateChatMessage(msg string) (bool, string) {
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return false, fmt.Sprintf("message must be at most %d characters", MaxMessageLength)
	}
	return true, ""
}
