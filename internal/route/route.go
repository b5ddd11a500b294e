// Package route implements the storefront's fragment-based navigation: a
// typed route parsed from hash fragments like "#/shop" or "#/product/3", and
// a navigator that owns the current route plus back/forward history.
package route

import (
	"fmt"
	"strconv"
	"strings"
)

// Page identifies a storefront page.
type Page int

const (
	Home Page = iota
	Shop
	About
	Contact
	Checkout
	Auth
	RefundPolicy
	PrivacyPolicy
	Terms
	Product
)

// String returns the page name for display and logs.
func (p Page) String() string {
	switch p {
	case Home:
		return "home"
	case Shop:
		return "shop"
	case About:
		return "about"
	case Contact:
		return "contact"
	case Checkout:
		return "checkout"
	case Auth:
		return "auth"
	case RefundPolicy:
		return "refund-policy"
	case PrivacyPolicy:
		return "privacy-policy"
	case Terms:
		return "terms"
	case Product:
		return "product"
	}
	return "unknown"
}

// Route is a parsed navigation target. ProductID is set only for Product
// pages.
type Route struct {
	Page      Page
	ProductID int
}

// HomeRoute is the fallback target for anything the grammar does not name.
var HomeRoute = Route{Page: Home}

// Parse maps a fragment string onto a route. The grammar is closed: "#/",
// "#/shop", "#/about", "#/contact", "#/checkout", "#/auth",
// "#/refund-policy", "#/privacy-policy", "#/terms", and
// "#/product/<positive integer>". Every other input, including malformed
// product ids, resolves to the home route. A missing leading "#" is
// tolerated so typed input like "/shop" dispatches the same way.
func Parse(fragment string) Route {
	s := strings.TrimSpace(fragment)
	s = strings.TrimPrefix(s, "#")

	switch s {
	case "", "/":
		return HomeRoute
	case "/shop":
		return Route{Page: Shop}
	case "/about":
		return Route{Page: About}
	case "/contact":
		return Route{Page: Contact}
	case "/checkout":
		return Route{Page: Checkout}
	case "/auth":
		return Route{Page: Auth}
	case "/refund-policy":
		return Route{Page: RefundPolicy}
	case "/privacy-policy":
		return Route{Page: PrivacyPolicy}
	case "/terms":
		return Route{Page: Terms}
	}

	if rest, ok := strings.CutPrefix(s, "/product/"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil || id <= 0 {
			return HomeRoute
		}
		return Route{Page: Product, ProductID: id}
	}

	return HomeRoute
}

// Fragment returns the canonical fragment for the route, the inverse of
// Parse over the valid grammar.
func (r Route) Fragment() string {
	switch r.Page {
	case Home:
		return "#/"
	case Product:
		return fmt.Sprintf("#/product/%d", r.ProductID)
	default:
		return "#/" + r.Page.String()
	}
}

// ProductRoute builds the detail route for a product id.
func ProductRoute(id int) Route {
	return Route{Page: Product, ProductID: id}
}
