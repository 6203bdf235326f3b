// internal/adapters/in/http/store/handler/wishlist_handler.go
package storeHandler

import (
	"errors"
	"net/http"
	"strings"

	"bijoux/internal/adapters/in/http/middleware"
	usecase "bijoux/internal/application/usecase"
)

// WishlistHandler serves the signed-in shopper's wishlist.
//
// Routes:
//   - GET  /store/me/wishlist
//   - POST /store/me/wishlist/toggle   {itemId}
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

func NewWishlistHandler(uc *usecase.WishlistUsecase) http.Handler {
	return &WishlistHandler{uc: uc}
}

func (h *WishlistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "wishlist handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet:
		h.handleList(w, r, uid)
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/toggle"):
		h.handleToggle(w, r, uid)
	default:
		methodNotAllowed(w)
	}
}

func (h *WishlistHandler) handleList(w http.ResponseWriter, r *http.Request, uid string) {
	entries, err := h.uc.List(r.Context(), uid)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	out := make([]wishEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWishEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

type wishToggleReq struct {
	ItemID string `json:"itemId"`
}

func (h *WishlistHandler) handleToggle(w http.ResponseWriter, r *http.Request, uid string) {
	var req wishToggleReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	result, err := h.uc.Toggle(r.Context(), uid, itemID)
	if err != nil {
		if errors.Is(err, usecase.ErrWishlistInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itemId": itemID, "result": string(result)})
}
