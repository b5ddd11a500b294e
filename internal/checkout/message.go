// Package checkout composes order summaries and hands them off to external
// messaging channels. The shop never delivers an order itself: the composed
// message leaves through a WhatsApp or mailto deep link and the conversation
// continues there.
package checkout

import (
	"strconv"
	"strings"

	"herbwala/internal/cart"
)

// BillingDetails is what the checkout form collects. Email and Notes are
// optional and omitted from the summary when empty.
type BillingDetails struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	Notes   string
}

// ComposeMessage renders the plain-text order summary. Field labels carry
// WhatsApp emphasis (*...*); each cart line is
// "<name> (x<qty>) - Rs <line total>" and the message always ends with the
// unemphasized grand total line "Total: Rs <subtotal>".
func ComposeMessage(b BillingDetails, snap cart.Snapshot) string {
	var sb strings.Builder

	sb.WriteString("*New Order*\n\n")

	sb.WriteString("*Name:* " + b.Name + "\n")
	sb.WriteString("*Phone:* " + b.Phone + "\n")
	if b.Email != "" {
		sb.WriteString("*Email:* " + b.Email + "\n")
	}
	sb.WriteString("*Address:* " + b.Address + "\n")
	sb.WriteString("*City:* " + b.City + "\n")
	if b.Notes != "" {
		sb.WriteString("*Notes:* " + b.Notes + "\n")
	}

	sb.WriteString("\n*Order Items:*\n")
	for _, item := range snap.Items {
		sb.WriteString(item.Product.Name)
		sb.WriteString(" (x" + strconv.Itoa(item.Quantity) + ")")
		sb.WriteString(" - Rs " + formatAmount(item.Total()))
		sb.WriteString("\n")
	}

	sb.WriteString("\nTotal: Rs " + formatAmount(snap.Subtotal))

	return sb.String()
}

// formatAmount renders an amount without trailing zeros: 1500 not 1500.00,
// 1500.5 not 1500.50.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
