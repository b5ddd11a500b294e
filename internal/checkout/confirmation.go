package checkout

import (
	"time"

	"github.com/google/uuid"

	"herbwala/internal/cart"
	"herbwala/internal/logging"
)

// Confirmation records a dispatched order so the checkout page can show a
// receipt after the cart is cleared.
type Confirmation struct {
	Ref      string
	PlacedAt time.Time
	Billing  BillingDetails
	Items    []cart.LineItem
	Total    float64
}

// NewConfirmation freezes the order the moment it leaves for an external
// channel.
func NewConfirmation(b BillingDetails, snap cart.Snapshot) Confirmation {
	c := Confirmation{
		Ref:      uuid.NewString(),
		PlacedAt: time.Now(),
		Billing:  b,
		Items:    snap.Items,
		Total:    snap.Subtotal,
	}
	logging.Checkout("Order %s placed: %d items, Rs %s", c.Ref, snap.ItemCount, formatAmount(c.Total))
	return c
}
