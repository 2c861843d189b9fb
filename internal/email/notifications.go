package email

import (
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/models"
)

// Notifier sends email notifications for store events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	log       *zap.Logger
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, log *zap.Logger) *Notifier {
	return &Notifier{
		service:   NewService(cfg, log),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		log:       log,
	}
}

// NotifyOrderPlaced tells the order desk about a new order.
func (n *Notifier) NotifyOrderPlaced(order *models.Order) {
	if !n.service.IsEnabled() {
		return
	}

	if len(n.cfg.OrderNotifyEmails) == 0 {
		n.log.Debug("no order notification recipients configured")
		return
	}

	subject, htmlBody, textBody := n.templates.OrderPlaced(order)
	n.service.SendAsync(n.cfg.OrderNotifyEmails, subject, htmlBody, textBody)
}
