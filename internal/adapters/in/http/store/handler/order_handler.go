// internal/adapters/in/http/store/handler/order_handler.go
package storeHandler

import (
	"net/http"
	"strings"

	"bijoux/internal/adapters/in/http/middleware"
	usecase "bijoux/internal/application/usecase"
	orderdom "bijoux/internal/domain/order"
)

// OrderHandler serves the shopper's order history.
//
// Routes:
//   - GET /store/me/orders
//   - GET /store/me/orders/{id}
type OrderHandler struct {
	uc     *usecase.CheckoutUsecase
	orders orderdom.Repository
}

func NewOrderHandler(uc *usecase.CheckoutUsecase, orders orderdom.Repository) http.Handler {
	return &OrderHandler{uc: uc, orders: orders}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil || h.orders == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if id := orderIDFromPath(path); id != "" {
		h.handleGet(w, r, uid, id)
		return
	}
	h.handleList(w, r, uid)
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request, uid string) {
	orders, err := h.uc.Orders(r.Context(), uid)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (h *OrderHandler) handleGet(w http.ResponseWriter, r *http.Request, uid, id string) {
	o, err := h.orders.GetByID(r.Context(), uid, id)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

func orderIDFromPath(path string) string {
	const marker = "/orders/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	id := strings.TrimSpace(path[i+len(marker):])
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
