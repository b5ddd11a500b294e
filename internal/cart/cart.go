// Package cart implements the in-memory shopping cart. The cart is an
// explicit state holder handed to whichever page needs it; every mutation
// returns a fresh immutable snapshot so callers never observe intermediate
// state. Nothing here is persisted.
package cart

import (
	"sync"

	"herbwala/internal/catalog"
	"herbwala/internal/logging"
)

// LineItem is one cart row: a full product snapshot and a strictly positive
// quantity. Unit price is the snapshot's price at the time of adding.
type LineItem struct {
	Product  catalog.Product
	Quantity int
}

// Total returns the line total (unit price times quantity).
func (li LineItem) Total() float64 {
	return li.Product.Price * float64(li.Quantity)
}

// Snapshot is an immutable view of the cart. ItemCount and Subtotal are
// recomputed at construction, never cached across mutations.
type Snapshot struct {
	Items     []LineItem
	ItemCount int
	Subtotal  float64
}

// Empty reports whether the snapshot has no lines.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// Cart holds the line items, keyed by product id with one line per product,
// ordered by insertion. Mutations happen on the UI event loop but CLI
// commands and the boot path touch the cart from other goroutines, hence the
// lock.
type Cart struct {
	mu    sync.RWMutex
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line for the product, or appends
// a new line with quantity 1.
func (c *Cart) Add(p catalog.Product) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			logging.CartDebug("add: product=%d qty=%d", p.ID, c.items[i].Quantity)
			return c.snapshotLocked()
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
	logging.CartDebug("add: product=%d new line", p.ID)
	return c.snapshotLocked()
}

// Remove deletes the line for the product. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			logging.CartDebug("remove: product=%d", productID)
			break
		}
	}
	return c.snapshotLocked()
}

// SetQuantity sets the line quantity to exactly qty. A qty of zero or less
// behaves like Remove.
func (c *Cart) SetQuantity(productID, qty int) Snapshot {
	if qty <= 0 {
		return c.Remove(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			logging.CartDebug("set quantity: product=%d qty=%d", productID, qty)
			break
		}
	}
	return c.snapshotLocked()
}

// Clear empties the cart.
func (c *Cart) Clear() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	logging.Cart("cart cleared")
	return c.snapshotLocked()
}

// Snapshot returns the current state.
func (c *Cart) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// snapshotLocked builds a snapshot under the caller's lock. The item slice is
// copied so later mutations cannot reach a snapshot already handed out.
func (c *Cart) snapshotLocked() Snapshot {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	snap := Snapshot{Items: items}
	for _, li := range items {
		snap.ItemCount += li.Quantity
		snap.Subtotal += li.Total()
	}
	return snap
}
