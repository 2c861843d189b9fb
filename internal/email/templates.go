package email

import (
	"fmt"
	"html"
	"strings"

	"storefront/internal/config"
	"storefront/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #16a34a; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { text-align: left; padding: 6px; border-bottom: 1px solid #e5e7eb; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// OrderPlaced generates the staff notification for a new order.
func (t *Templates) OrderPlaced(order *models.Order) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New order #%d from %s", t.cfg.SiteTitle, order.ID, order.CustomerName)

	address := order.CustomerAddress
	if address == "" {
		address = "(not provided)"
	}

	var rowsHTML, rowsText strings.Builder
	for _, item := range order.Products {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("Product #%d", item.ProductID)
		}
		rowsHTML.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>",
			html.EscapeString(name), item.Quantity, item.Price))
		rowsText.WriteString(fmt.Sprintf("  - %s x%d @ %.2f\n", name, item.Quantity, item.Price))
	}

	content := fmt.Sprintf(`
        <p>A new order has been placed and is waiting to be processed.</p>

        <div class="info-box">
            <p><span class="label">Order:</span> #%d</p>
            <p><span class="label">Customer:</span> %s</p>
            <p><span class="label">Phone:</span> %s</p>
            <p><span class="label">Address:</span> %s</p>
            <p><span class="label">Total:</span> %.2f</p>
        </div>

        <table>
            <tr><th>Product</th><th>Qty</th><th>Price</th></tr>
            %s
        </table>
    `,
		order.ID,
		html.EscapeString(order.CustomerName),
		html.EscapeString(order.CustomerPhone),
		html.EscapeString(address),
		order.TotalAmount,
		rowsHTML.String(),
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`New order #%d

Customer: %s
Phone: %s
Address: %s
Total: %.2f

Items:
%s
--
%s
%s`,
		order.ID,
		order.CustomerName,
		order.CustomerPhone,
		address,
		order.TotalAmount,
		rowsText.String(),
		t.cfg.SiteTitle,
		t.cfg.BaseURL,
	)

	return
}
