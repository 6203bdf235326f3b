// internal/adapters/in/http/admin/router.go
package admin

import (
	"log"
	"net/http"
)

// Deps is the back-office handler set.
type Deps struct {
	Catalog  http.Handler
	User     http.Handler
	Overview http.Handler
	Report   http.Handler

	// Auth wraps every admin route: bearer verify + admin role check.
	Auth func(http.Handler) http.Handler
}

func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[admin.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers back-office routes onto mux.
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

	handleSafe(mux, "/admin/items", authed(deps.Catalog), "Catalog(admin)")
	handleSafe(mux, "/admin/items/", authed(deps.Catalog), "Catalog(admin)")

	handleSafe(mux, "/admin/users", authed(deps.User), "User(admin)")
	handleSafe(mux, "/admin/users/", authed(deps.User), "User(admin)")

	handleSafe(mux, "/admin/overview/", authed(deps.Overview), "Overview(admin)")

	handleSafe(mux, "/admin/reports/completed-orders", authed(deps.Report), "Report(admin)")
}
