// internal/adapters/in/http/store/handler/checkout_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"bijoux/internal/adapters/in/http/middleware"
	usecase "bijoux/internal/application/usecase"
)

// CheckoutHandler turns cart selections into orders.
//
// Routes:
//   - POST /store/me/checkout   {itemIds: [...]}  (empty/omitted = whole cart)
//   - POST /store/me/buy-now    {itemId}
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if strings.HasSuffix(path, "/buy-now") {
		h.handleBuyNow(w, r, uid)
		return
	}
	h.handleCheckout(w, r, uid)
}

type checkoutReq struct {
	ItemIDs []string `json:"itemIds"`
}

func (h *CheckoutHandler) handleCheckout(w http.ResponseWriter, r *http.Request, uid string) {
	var req checkoutReq
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json body")
			return
		}
	}

	o, err := h.uc.Checkout(r.Context(), uid, req.ItemIDs)
	if err != nil {
		h.writeCheckoutErr(w, uid, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderDTO(o))
}

type buyNowReq struct {
	ItemID string `json:"itemId"`
}

func (h *CheckoutHandler) handleBuyNow(w http.ResponseWriter, r *http.Request, uid string) {
	var req buyNowReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	o, err := h.uc.BuyNow(r.Context(), uid, itemID)
	if err != nil {
		h.writeCheckoutErr(w, uid, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderDTO(o))
}

func (h *CheckoutHandler) writeCheckoutErr(w http.ResponseWriter, uid string, err error) {
	var partial *usecase.PartialCheckoutFailure
	if errors.As(err, &partial) {
		// The order exists; only the cart cleanup failed. The client must not
		// retry checkout, so this is not a plain 5xx.
		log.Printf("[store_checkout_handler] partial failure uid=%s orderId=%s undeleted=%v cause=%v",
			uid, partial.OrderID, partial.Undeleted, partial.Cause)
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":     "order placed but cart cleanup incomplete",
			"orderId":   partial.OrderID,
			"undeleted": partial.Undeleted,
		})
		return
	}
	if errors.Is(err, usecase.ErrCheckoutInvalidArgument) {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeErr(w, statusFromErr(err), err.Error())
}
