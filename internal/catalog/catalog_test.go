package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		p, ok := ByID(1)
		require.True(t, ok)
		assert.Equal(t, "Pure Himalayan Shilajit Resin", p.Name)
		assert.Equal(t, 1500.0, p.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := ByID(9999)
		assert.False(t, ok)
	})

	t.Run("zero and negative ids", func(t *testing.T) {
		_, ok := ByID(0)
		assert.False(t, ok)
		_, ok = ByID(-3)
		assert.False(t, ok)
	})
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	require.NotEmpty(t, a)

	a[0].Name = "mutated"
	b := All()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	// Sorted and unique.
	seen := make(map[string]bool)
	for i, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
		if i > 0 {
			assert.LessOrEqual(t, cats[i-1], c)
		}
	}

	for _, c := range cats {
		members := ByCategory(c)
		require.NotEmpty(t, members)
		for _, p := range members {
			assert.Equal(t, c, p.Category)
		}
	}
}

func TestByCategoryUnknown(t *testing.T) {
	assert.Empty(t, ByCategory("Gadgets"))
}

func TestSearch(t *testing.T) {
	t.Run("matches name case-insensitively", func(t *testing.T) {
		hits := Search("SHILAJIT")
		require.NotEmpty(t, hits)
		for _, p := range hits {
			assert.Contains(t, p.Name, "Shilajit")
		}
	})

	t.Run("matches description", func(t *testing.T) {
		hits := Search("fulvic")
		require.Len(t, hits, 1)
		assert.Equal(t, 1, hits[0].ID)
	})

	t.Run("matches category", func(t *testing.T) {
		hits := Search("powders")
		require.NotEmpty(t, hits)
		for _, p := range hits {
			assert.Equal(t, "Powders", p.Category)
		}
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, Search("   "), len(All()))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("smartphone"))
	})
}

func TestFeatured(t *testing.T) {
	feat := Featured()
	require.NotEmpty(t, feat)
	for _, p := range feat {
		assert.True(t, p.Discounted(), "product %d should be discounted", p.ID)
		assert.Greater(t, p.OriginalPrice, p.Price)
	}
}

func TestProductFieldsPopulated(t *testing.T) {
	for _, p := range All() {
		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Positive(t, p.Price)
		assert.NotEmpty(t, p.ImageURL)
		assert.NotEmpty(t, p.ImageURLs)
		assert.Equal(t, p.ImageURL, p.ImageURLs[0])
	}
}
