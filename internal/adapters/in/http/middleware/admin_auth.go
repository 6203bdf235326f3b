// internal/adapters/in/http/middleware/admin_auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"

	shopperdom "bijoux/internal/domain/shopper"
)

// AdminAuthMiddleware sits behind UserAuthMiddleware and additionally requires
// the resolved shopper profile to carry the admin role.
type AdminAuthMiddleware struct {
	Shoppers shopperdom.Repository
}

func (m *AdminAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Shoppers == nil {
			http.Error(w, "admin auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := CurrentUserUID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		s, err := m.Shoppers.GetByUID(r.Context(), uid)
		if err != nil {
			if errors.Is(err, shopperdom.ErrNotFound) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			log.Printf("[admin_auth] shopper lookup failed uid=%s err=%v", uid, err)
			http.Error(w, "shopper lookup failed", http.StatusInternalServerError)
			return
		}
		if !s.IsAdmin() {
			http.Error(w, "forbidden: admin role required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
