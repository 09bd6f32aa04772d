// Package notify builds WhatsApp messages and shareable deep links for order
// events. It is stateless: the destination number is a parameter, and
// sending never touches store state.
package notify

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// OrderData carries the details of a newly placed order.
type OrderData struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	ProductName     string
	ProductPrice    string
	Notes           *string
}

// CancelData carries the details of an order cancellation request.
type CancelData struct {
	CustomerName  string
	CustomerPhone string
	ProductName   string
	OrderID       int
}

// OrderMessage renders the human-readable new-order notification.
func OrderMessage(data OrderData) string {
	notes := "None"
	if data.Notes != nil && *data.Notes != "" {
		notes = *data.Notes
	}

	var b strings.Builder
	b.WriteString("🛍️ *NEW ORDER RECEIVED - ShopEase Store*\n\n")
	b.WriteString("📦 *Order Details:*\n")
	b.WriteString("• Product: " + data.ProductName + "\n")
	b.WriteString("• Price: $" + data.ProductPrice + "\n")
	b.WriteString("• Notes: " + notes + "\n\n")
	b.WriteString("👤 *Customer Information:*\n")
	b.WriteString("• Name: " + data.CustomerName + "\n")
	b.WriteString("• Email: " + data.CustomerEmail + "\n")
	b.WriteString("• Phone: " + data.CustomerPhone + "\n")
	b.WriteString("• Address: " + data.CustomerAddress + "\n\n")
	b.WriteString("Please process this order promptly!\n\n")
	b.WriteString("_Sent from ShopEase E-Commerce System_")
	return b.String()
}

// CancelMessage renders the human-readable cancellation notification.
func CancelMessage(data CancelData) string {
	var b strings.Builder
	b.WriteString("❌ *ORDER CANCELLATION REQUEST - ShopEase Store*\n\n")
	b.WriteString("🆔 *Order ID:* #" + strconv.Itoa(data.OrderID) + "\n")
	b.WriteString("🛍️ *Product:* " + data.ProductName + "\n\n")
	b.WriteString("👤 *Customer Details:*\n")
	b.WriteString("• Name: " + data.CustomerName + "\n")
	b.WriteString("• Phone: " + data.CustomerPhone + "\n\n")
	b.WriteString("⚠️ *Action Required:* Please process this cancellation request immediately.\n\n")
	b.WriteString("_Sent from ShopEase E-Commerce System_")
	return b.String()
}

// Link builds a wa.me deep link that opens a chat with the given number and
// the message pre-filled. A leading "+" on the number is stripped.
func Link(number, message string) string {
	return "https://wa.me/" + strings.TrimPrefix(number, "+") + "?text=" + url.QueryEscape(message)
}

// WhatsApp sends order notifications by producing wa.me deep links. The
// service has no delivery channel of its own; it logs the link for the store
// operator to open.
type WhatsApp struct {
	number string
	logger zerolog.Logger
}

// NewWhatsApp creates a notifier targeting the given store number.
func NewWhatsApp(number string, logger zerolog.Logger) *WhatsApp {
	return &WhatsApp{
		number: number,
		logger: logger.With().Str("notifier", "whatsapp").Logger(),
	}
}

// SendOrder publishes a new-order notification link. It reports false when
// no destination number is configured.
func (w *WhatsApp) SendOrder(data OrderData) bool {
	if w.number == "" {
		w.logger.Warn().Msg("no store number configured, dropping order notification")
		return false
	}

	link := Link(w.number, OrderMessage(data))
	w.logger.Info().
		Str("customer", data.CustomerName).
		Str("link", link).
		Msg("order notification link ready")

	return true
}

// SendCancel publishes a cancellation notification link. It reports false
// when no destination number is configured.
func (w *WhatsApp) SendCancel(data CancelData) bool {
	if w.number == "" {
		w.logger.Warn().Msg("no store number configured, dropping cancellation notification")
		return false
	}

	link := Link(w.number, CancelMessage(data))
	w.logger.Info().
		Int("order_id", data.OrderID).
		Str("link", link).
		Msg("cancellation notification link ready")

	return true
}
