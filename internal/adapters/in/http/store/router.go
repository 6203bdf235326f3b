// internal/adapters/in/http/store/router.go
package store

import (
	"log"
	"net/http"
)

// Deps is the shopper-facing handler set.
type Deps struct {
	Catalog  http.Handler // public
	Cart     http.Handler
	Wishlist http.Handler
	Checkout http.Handler
	Order    http.Handler
	Profile  http.Handler

	// Auth wraps the /store/me/* handlers (Firebase bearer token).
	Auth func(http.Handler) http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so Cloud Run won't crash).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[store.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers shopper-facing routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	auth := deps.Auth
	if auth == nil {
		auth = func(h http.Handler) http.Handler { return h }
	}
	authed := func(h http.Handler) http.Handler {
		if h == nil {
			return nil
		}
		return auth(h)
	}

	// catalog (public, no token)
	handleSafe(mux, "/store/items", deps.Catalog, "Catalog")
	handleSafe(mux, "/store/items/", deps.Catalog, "Catalog")

	// cart
	handleSafe(mux, "/store/me/cart", authed(deps.Cart), "Cart")
	handleSafe(mux, "/store/me/cart/", authed(deps.Cart), "Cart")

	// wishlist
	handleSafe(mux, "/store/me/wishlist", authed(deps.Wishlist), "Wishlist")
	handleSafe(mux, "/store/me/wishlist/", authed(deps.Wishlist), "Wishlist")

	// checkout
	handleSafe(mux, "/store/me/checkout", authed(deps.Checkout), "Checkout")
	handleSafe(mux, "/store/me/buy-now", authed(deps.Checkout), "Checkout(buy-now)")

	// orders
	handleSafe(mux, "/store/me/orders", authed(deps.Order), "Order")
	handleSafe(mux, "/store/me/orders/", authed(deps.Order), "Order")

	// profile
	handleSafe(mux, "/store/me/profile", authed(deps.Profile), "Profile")
}
