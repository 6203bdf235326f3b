// internal/adapters/in/http/store/handler/cart_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"bijoux/internal/adapters/in/http/middleware"
	usecase "bijoux/internal/application/usecase"
	cartdom "bijoux/internal/domain/cart"
)

// CartHandler serves the signed-in shopper's cart.
//
// Routes:
//   - GET    /store/me/cart
//   - POST   /store/me/cart/items          {itemId, quantity}
//   - PATCH  /store/me/cart/items          {itemId, delta}
//   - DELETE /store/me/cart/items          {itemId}
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	onItems := strings.HasSuffix(path, "/items")

	switch {
	case r.Method == http.MethodGet && !onItems:
		h.handleList(w, r, uid)
	case r.Method == http.MethodPost && onItems:
		h.handleAdd(w, r, uid)
	case r.Method == http.MethodPatch && onItems:
		h.handleApplyDelta(w, r, uid)
	case r.Method == http.MethodDelete && onItems:
		h.handleRemove(w, r, uid)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleList(w http.ResponseWriter, r *http.Request, uid string) {
	entries, err := h.uc.List(r.Context(), uid)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": toCartEntryDTOs(entries)})
}

type cartItemReq struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity,omitempty"`
	Delta    int    `json:"delta,omitempty"`
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, uid string) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	entry, err := h.uc.Add(r.Context(), uid, itemID, req.Quantity)
	if err != nil {
		var dup *cartdom.DuplicateError
		if errors.As(err, &dup) {
			// already in cart: surface the existing entry so the client can
			// offer "increase quantity instead"
			writeJSON(w, http.StatusConflict, map[string]any{
				"error": "already in cart",
				"item":  toCartEntryDTO(dup.Existing),
			})
			return
		}
		if errors.Is(err, usecase.ErrCartInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[store_cart_handler] add failed uid=%s itemId=%s err=%v", uid, itemID, err)
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toCartEntryDTO(entry))
}

func (h *CartHandler) handleApplyDelta(w http.ResponseWriter, r *http.Request, uid string) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	qty, err := h.uc.ApplyDelta(r.Context(), uid, itemID, req.Delta)
	if err != nil {
		if errors.Is(err, usecase.ErrCartInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itemId": itemID, "quantity": qty})
}

func (h *CartHandler) handleRemove(w http.ResponseWriter, r *http.Request, uid string) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	if err := h.uc.Remove(r.Context(), uid, itemID); err != nil {
		if errors.Is(err, usecase.ErrCartInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
