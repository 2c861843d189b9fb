package email

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"storefront/internal/models"
)

func TestNotifier_NotifyOrderPlaced(t *testing.T) {
	cfg := enabledConfig()
	n := NewNotifier(cfg, zap.NewNop())
	c := newCapture()
	n.service.send = c.send

	n.NotifyOrderPlaced(&models.Order{ID: 7, CustomerName: "Karim", Products: []models.OrderItem{{ProductID: 1, Quantity: 1}}})

	select {
	case to := <-c.to:
		if len(to) != 1 || to[0] != "orders@example.com" {
			t.Errorf("recipients = %v, want [orders@example.com]", to)
		}
	case <-time.After(time.Second):
		t.Fatal("NotifyOrderPlaced() did not send")
	}
}

func TestNotifier_NotifyOrderPlaced_Skipped(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *Notifier)
	}{
		{"email disabled", func(n *Notifier) { n.service.enabled = false }},
		{"no recipients", func(n *Notifier) { n.cfg.OrderNotifyEmails = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(enabledConfig(), zap.NewNop())
			c := newCapture()
			n.service.send = c.send
			tt.mutate(n)

			n.NotifyOrderPlaced(&models.Order{ID: 1})

			select {
			case <-c.msgs:
				t.Error("NotifyOrderPlaced() sent a message")
			case <-time.After(50 * time.Millisecond):
			}
		})
	}
}
