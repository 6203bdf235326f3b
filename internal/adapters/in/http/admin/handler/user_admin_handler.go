// internal/adapters/in/http/admin/handler/user_admin_handler.go
package adminHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "bijoux/internal/application/usecase"
	shopperdom "bijoux/internal/domain/shopper"
)

// UserAdminHandler serves shopper account management for the back office.
//
// Routes:
//   - GET    /admin/users
//   - GET    /admin/users/{uid}
//   - DELETE /admin/users/{uid}
type UserAdminHandler struct {
	uc *usecase.ShopperUsecase
}

func NewUserAdminHandler(uc *usecase.ShopperUsecase) http.Handler {
	return &UserAdminHandler{uc: uc}
}

type userDTO struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(s shopperdom.Shopper) userDTO {
	return userDTO{
		UID:       s.UID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		CreatedAt: toRFC3339(s.CreatedAt),
	}
}

func (h *UserAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "user admin handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	uid := userUIDFromPath(path)

	switch {
	case r.Method == http.MethodGet && uid == "":
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, uid)
	case r.Method == http.MethodDelete && uid != "":
		h.handleDelete(w, r, uid)
	default:
		methodNotAllowed(w)
	}
}

func (h *UserAdminHandler) handleList(w http.ResponseWriter, r *http.Request) {
	shoppers, err := h.uc.List(r.Context())
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	out := make([]userDTO, 0, len(shoppers))
	for _, s := range shoppers {
		out = append(out, toUserDTO(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (h *UserAdminHandler) handleGet(w http.ResponseWriter, r *http.Request, uid string) {
	s, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(s))
}

func (h *UserAdminHandler) handleDelete(w http.ResponseWriter, r *http.Request, uid string) {
	if err := h.uc.Delete(r.Context(), uid); err != nil {
		if errors.Is(err, usecase.ErrShopperInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userUIDFromPath(path string) string {
	const marker = "/users/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	uid := strings.TrimSpace(path[i+len(marker):])
	if strings.Contains(uid, "/") {
		return ""
	}
	return uid
}
