// Package catalog holds the compiled-in product reference data for the
// herbwala storefront. The catalog is read-only: pages and the cart take
// value copies and never mutate it.
package catalog

import (
	"sort"
	"strings"
)

// Product is a single storefront item. OriginalPrice is zero unless the
// product is discounted, in which case it carries the pre-sale price.
type Product struct {
	ID            int
	Name          string
	Category      string
	Price         float64
	OriginalPrice float64
	Rating        float64
	ImageURL      string
	ImageURLs     []string
	Benefits      []string
	Description   string
}

// Discounted reports whether the product carries a sale price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price
}

// All returns every product in display order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given id.
func ByID(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the products in the given category, in display order.
func ByCategory(name string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == name {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, category, or description contains the
// query, case-insensitively. An empty query matches everything.
func Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the discounted products, in display order. The home page
// uses this set for the sale section.
func Featured() []Product {
	var out []Product
	for _, p := range products {
		if p.Discounted() {
			out = append(out, p)
		}
	}
	return out
}

var products = []Product{
	{
		ID:            1,
		Name:          "Pure Himalayan Shilajit Resin",
		Category:      "Resins",
		Price:         1500,
		OriginalPrice: 2000,
		Rating:        4.8,
		ImageURL:      "https://cdn.herbwala.pk/products/shilajit-resin-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/shilajit-resin-1.jpg",
			"https://cdn.herbwala.pk/products/shilajit-resin-2.jpg",
			"https://cdn.herbwala.pk/products/shilajit-resin-3.jpg",
		},
		Benefits: []string{
			"Rich in fulvic acid and trace minerals",
			"Supports stamina and natural energy",
			"Lab tested for purity and heavy metals",
		},
		Description: "Sun-dried shilajit resin harvested above 16,000 ft in the Gilgit ranges. Each jar is purified in spring water and tested batch by batch.",
	},
	{
		ID:       2,
		Name:     "Shilajit Gold Capsules",
		Category: "Capsules",
		Price:    2200,
		Rating:   4.6,
		ImageURL: "https://cdn.herbwala.pk/products/shilajit-gold-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/shilajit-gold-1.jpg",
			"https://cdn.herbwala.pk/products/shilajit-gold-2.jpg",
		},
		Benefits: []string{
			"Shilajit with saffron and ashwagandha",
			"60 vegetarian capsules per bottle",
			"Convenient daily dosage",
		},
		Description: "Classic shilajit gold formulation combining purified resin with saffron threads and ashwagandha extract in an easy capsule form.",
	},
	{
		ID:            3,
		Name:          "Organic Ashwagandha Root Powder",
		Category:      "Powders",
		Price:         850,
		OriginalPrice: 1100,
		Rating:        4.7,
		ImageURL:      "https://cdn.herbwala.pk/products/ashwagandha-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/ashwagandha-1.jpg",
			"https://cdn.herbwala.pk/products/ashwagandha-2.jpg",
		},
		Benefits: []string{
			"Certified organic root, stone ground",
			"Traditionally used for stress support",
			"No fillers or additives",
		},
		Description: "Single-origin ashwagandha root from Rajasthan farms, slow ground to preserve withanolides. Mix with warm milk or honey.",
	},
	{
		ID:       4,
		Name:     "Moringa Leaf Powder",
		Category: "Powders",
		Price:    650,
		Rating:   4.4,
		ImageURL: "https://cdn.herbwala.pk/products/moringa-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/moringa-1.jpg",
			"https://cdn.herbwala.pk/products/moringa-2.jpg",
		},
		Benefits: []string{
			"Shade-dried to retain chlorophyll",
			"Naturally rich in iron and vitamin A",
			"Mild taste, blends easily",
		},
		Description: "Tender moringa leaves picked before sunrise and shade-dried within hours. A spoonful goes well in smoothies and dals.",
	},
	{
		ID:       5,
		Name:     "Ginseng Vitality Extract",
		Category: "Extracts",
		Price:    1800,
		Rating:   4.5,
		ImageURL: "https://cdn.herbwala.pk/products/ginseng-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/ginseng-1.jpg",
			"https://cdn.herbwala.pk/products/ginseng-2.jpg",
			"https://cdn.herbwala.pk/products/ginseng-3.jpg",
		},
		Benefits: []string{
			"Six-year-old red ginseng roots",
			"Double water extraction",
			"30 ml dropper bottle",
		},
		Description: "Concentrated red ginseng extract prepared with a slow double extraction. A few drops under the tongue, morning and evening.",
	},
	{
		ID:            6,
		Name:          "Black Seed Oil",
		Category:      "Oils",
		Price:         950,
		OriginalPrice: 1200,
		Rating:        4.6,
		ImageURL:      "https://cdn.herbwala.pk/products/kalonji-oil-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/kalonji-oil-1.jpg",
			"https://cdn.herbwala.pk/products/kalonji-oil-2.jpg",
		},
		Benefits: []string{
			"Cold pressed kalonji seeds",
			"High thymoquinone content",
			"Dark glass bottle, 120 ml",
		},
		Description: "First cold pressing of Ethiopian black seed, bottled unfiltered in dark glass. Strong, peppery, and unmistakably fresh.",
	},
	{
		ID:       7,
		Name:     "Turmeric Curcumin Capsules",
		Category: "Capsules",
		Price:    780,
		Rating:   4.3,
		ImageURL: "https://cdn.herbwala.pk/products/turmeric-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/turmeric-1.jpg",
		},
		Benefits: []string{
			"95% curcuminoid extract",
			"With black pepper for absorption",
			"90 capsules per bottle",
		},
		Description: "High-potency turmeric extract standardized to 95% curcuminoids, paired with piperine. Lacha turmeric from Kasur district.",
	},
	{
		ID:       8,
		Name:     "Raw Sidr Honey",
		Category: "Honey",
		Price:    2400,
		Rating:   4.9,
		ImageURL: "https://cdn.herbwala.pk/products/sidr-honey-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/sidr-honey-1.jpg",
			"https://cdn.herbwala.pk/products/sidr-honey-2.jpg",
		},
		Benefits: []string{
			"Single-flower sidr harvest",
			"Unheated and unfiltered",
			"Thick amber texture",
		},
		Description: "Rare sidr honey collected once a year from beri groves in Karak. Never heated, never blended, crystallizes naturally in winter.",
	},
	{
		ID:       9,
		Name:     "Maca Root Powder",
		Category: "Powders",
		Price:    1150,
		Rating:   4.2,
		ImageURL: "https://cdn.herbwala.pk/products/maca-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/maca-1.jpg",
			"https://cdn.herbwala.pk/products/maca-2.jpg",
		},
		Benefits: []string{
			"Gelatinized for easy digestion",
			"Yellow maca from Junin plateau",
			"Malty flavor, good in shakes",
		},
		Description: "Gelatinized Peruvian yellow maca, pre-cooked at low heat so the starches digest easily. A breakfast staple for athletes.",
	},
	{
		ID:            10,
		Name:          "Triphala Digestive Tonic",
		Category:      "Extracts",
		Price:         720,
		OriginalPrice: 900,
		Rating:        4.1,
		ImageURL:      "https://cdn.herbwala.pk/products/triphala-1.jpg",
		ImageURLs: []string{
			"https://cdn.herbwala.pk/products/triphala-1.jpg",
		},
		Benefits: []string{
			"Classical three-fruit formulation",
			"Amla, bibhitaki, and haritaki",
			"Gentle evening tonic",
		},
		Description: "The classical triphala trio brewed into a liquid tonic. Equal parts amla, bibhitaki, and haritaki, nothing else.",
	},
}
