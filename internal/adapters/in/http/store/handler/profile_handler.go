// internal/adapters/in/http/store/handler/profile_handler.go
package storeHandler

import (
	"errors"
	"net/http"
	"strings"

	"bijoux/internal/adapters/in/http/middleware"
	usecase "bijoux/internal/application/usecase"
	shopperdom "bijoux/internal/domain/shopper"
)

// ProfileHandler serves the shopper's own profile.
//
// Routes:
//   - GET  /store/me/profile
//   - POST /store/me/profile   {firstName, lastName}  (first-sign-in upsert)
type ProfileHandler struct {
	uc *usecase.ShopperUsecase
}

func NewProfileHandler(uc *usecase.ShopperUsecase) http.Handler {
	return &ProfileHandler{uc: uc}
}

type shopperDTO struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func toShopperDTO(s shopperdom.Shopper) shopperDTO {
	return shopperDTO{
		UID:       s.UID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		CreatedAt: toRFC3339(s.CreatedAt),
	}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "profile handler is not configured")
		return
	}

	uid, email, ok := middleware.CurrentUserUIDAndEmail(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, uid)
	case http.MethodPost:
		h.handleEnsure(w, r, uid, email)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProfileHandler) handleGet(w http.ResponseWriter, r *http.Request, uid string) {
	s, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		if errors.Is(err, shopperdom.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "profile not found")
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toShopperDTO(s))
}

type profileReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *ProfileHandler) handleEnsure(w http.ResponseWriter, r *http.Request, uid, email string) {
	var req profileReq
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json body")
			return
		}
	}

	s, err := h.uc.EnsureProfile(r.Context(), uid, email,
		strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName))
	if err != nil {
		if errors.Is(err, usecase.ErrShopperInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toShopperDTO(s))
}
