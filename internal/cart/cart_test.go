package cart

import (
	"testing"

	"herbwala/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product", Price: price}
}

func TestAddAccumulatesQuantity(t *testing.T) {
	c := New()
	p := product(1, 500)

	snap := c.Add(p)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)

	snap = c.Add(p)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 2, snap.ItemCount)
	assert.Equal(t, 1000.0, snap.Subtotal)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product(3, 10))
	c.Add(product(1, 20))
	snap := c.Add(product(2, 30))

	ids := []int{snap.Items[0].Product.ID, snap.Items[1].Product.ID, snap.Items[2].Product.ID}
	assert.Equal(t, []int{3, 1, 2}, ids)

	// Re-adding an existing product must not move its line.
	snap = c.Add(product(1, 20))
	ids = []int{snap.Items[0].Product.ID, snap.Items[1].Product.ID, snap.Items[2].Product.ID}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	c.Add(product(1, 500))
	c.Add(product(1, 500))
	snap := c.Add(product(2, 1200))

	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, 2200.0, snap.Subtotal)
}

func TestAddSequenceProperty(t *testing.T) {
	c := New()
	prices := map[int]float64{1: 150, 2: 720, 3: 2400}
	addCounts := map[int]int{1: 4, 2: 1, 3: 3}

	var snap Snapshot
	for id, n := range addCounts {
		for i := 0; i < n; i++ {
			snap = c.Add(product(id, prices[id]))
		}
	}

	wantCount := 0
	wantSubtotal := 0.0
	for id, n := range addCounts {
		wantCount += n
		wantSubtotal += prices[id] * float64(n)
	}
	assert.Equal(t, wantCount, snap.ItemCount)
	assert.InDelta(t, wantSubtotal, snap.Subtotal, 1e-9)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product(1, 500))
	c.Add(product(2, 300))

	snap := c.Remove(1)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Product.ID)
	assert.Equal(t, 300.0, snap.Subtotal)

	// Absent product: no-op.
	snap = c.Remove(42)
	assert.Len(t, snap.Items, 1)
}

func TestSetQuantity(t *testing.T) {
	t.Run("sets exact quantity", func(t *testing.T) {
		c := New()
		c.Add(product(1, 500))
		snap := c.SetQuantity(1, 7)
		assert.Equal(t, 7, snap.ItemCount)
		assert.Equal(t, 3500.0, snap.Subtotal)
	})

	t.Run("zero behaves like remove", func(t *testing.T) {
		a := New()
		a.Add(product(1, 500))
		a.Add(product(2, 300))
		got := a.SetQuantity(1, 0)

		b := New()
		b.Add(product(1, 500))
		b.Add(product(2, 300))
		want := b.Remove(1)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("SetQuantity(1, 0) differs from Remove(1) (-want +got):\n%s", diff)
		}
	})

	t.Run("negative behaves like remove", func(t *testing.T) {
		c := New()
		c.Add(product(1, 500))
		snap := c.SetQuantity(1, -2)
		assert.True(t, snap.Empty())
		assert.Zero(t, snap.Subtotal)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c := New()
		c.Add(product(1, 500))
		snap := c.SetQuantity(9, 4)
		assert.Equal(t, 1, snap.ItemCount)
	})
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(product(1, 500))
	c.Add(product(2, 300))

	snap := c.Clear()
	assert.True(t, snap.Empty())
	assert.Zero(t, snap.ItemCount)
	assert.Zero(t, snap.Subtotal)
}

func TestQuantitiesStayPositive(t *testing.T) {
	c := New()
	c.Add(product(1, 500))
	c.SetQuantity(1, 0)
	c.Add(product(2, 10))
	c.SetQuantity(2, -1)
	c.Add(product(3, 20))

	for _, li := range c.Snapshot().Items {
		assert.Positive(t, li.Quantity)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New()
	c.Add(product(1, 500))
	snap := c.Snapshot()

	// Mutating the snapshot's slice must not reach the cart.
	snap.Items[0].Quantity = 99
	assert.Equal(t, 1, c.Snapshot().Items[0].Quantity)

	// Later cart mutations must not reach the old snapshot.
	c.Add(product(2, 300))
	assert.Len(t, snap.Items, 1)
}
