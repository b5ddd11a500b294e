package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKnownFragments(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     Route
	}{
		{"empty", "", HomeRoute},
		{"bare hash", "#", HomeRoute},
		{"home", "#/", HomeRoute},
		{"shop", "#/shop", Route{Page: Shop}},
		{"about", "#/about", Route{Page: About}},
		{"contact", "#/contact", Route{Page: Contact}},
		{"checkout", "#/checkout", Route{Page: Checkout}},
		{"auth", "#/auth", Route{Page: Auth}},
		{"refund policy", "#/refund-policy", Route{Page: RefundPolicy}},
		{"privacy policy", "#/privacy-policy", Route{Page: PrivacyPolicy}},
		{"terms", "#/terms", Route{Page: Terms}},
		{"product", "#/product/3", Route{Page: Product, ProductID: 3}},
		{"product large id", "#/product/412", Route{Page: Product, ProductID: 412}},
		{"missing hash prefix", "/shop", Route{Page: Shop}},
		{"surrounding whitespace", "  #/about  ", Route{Page: About}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.fragment))
		})
	}
}

func TestParseFallsBackToHome(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{"unknown path", "#/bogus"},
		{"trailing slash", "#/shop/"},
		{"product without id", "#/product/"},
		{"product bare", "#/product"},
		{"product non-numeric", "#/product/abc"},
		{"product zero", "#/product/0"},
		{"product negative", "#/product/-2"},
		{"product float", "#/product/1.5"},
		{"product trailing segment", "#/product/3/reviews"},
		{"case mismatch", "#/Shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, HomeRoute, Parse(tt.fragment))
		})
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	routes := []Route{
		HomeRoute,
		{Page: Shop},
		{Page: About},
		{Page: Contact},
		{Page: Checkout},
		{Page: Auth},
		{Page: RefundPolicy},
		{Page: PrivacyPolicy},
		{Page: Terms},
		{Page: Product, ProductID: 7},
	}

	for _, r := range routes {
		t.Run(r.Fragment(), func(t *testing.T) {
			assert.Equal(t, r, Parse(r.Fragment()))
		})
	}
}

func TestProductRoute(t *testing.T) {
	r := ProductRoute(9)
	assert.Equal(t, Product, r.Page)
	assert.Equal(t, 9, r.ProductID)
	assert.Equal(t, "#/product/9", r.Fragment())
}
