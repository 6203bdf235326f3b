// internal/adapters/in/http/admin/handler/overview_handler.go
package adminHandler

import (
	"net/http"
	"strings"

	adminquery "bijoux/internal/application/query/admin"
)

// OverviewHandler serves the per-shopper cart and purchase overviews.
//
// Routes:
//   - GET /admin/overview/carts
//   - GET /admin/overview/purchases
type OverviewHandler struct {
	carts     *adminquery.CartOverviewQuery
	purchases *adminquery.PurchaseOverviewQuery
}

func NewOverviewHandler(carts *adminquery.CartOverviewQuery, purchases *adminquery.PurchaseOverviewQuery) http.Handler {
	return &OverviewHandler{carts: carts, purchases: purchases}
}

func (h *OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	switch {
	case strings.HasSuffix(path, "/carts"):
		h.handleCarts(w, r)
	case strings.HasSuffix(path, "/purchases"):
		h.handlePurchases(w, r)
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *OverviewHandler) handleCarts(w http.ResponseWriter, r *http.Request) {
	if h.carts == nil {
		writeErr(w, http.StatusInternalServerError, "cart overview is not configured")
		return
	}
	rows, err := h.carts.Run(r.Context())
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"carts": rows})
}

func (h *OverviewHandler) handlePurchases(w http.ResponseWriter, r *http.Request) {
	if h.purchases == nil {
		writeErr(w, http.StatusInternalServerError, "purchase overview is not configured")
		return
	}
	rows, err := h.purchases.Run(r.Context())
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"purchases": rows})
}
