// internal/adapters/in/http/admin/handler/catalog_admin_handler.go
package adminHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "bijoux/internal/application/usecase"
	catalogdom "bijoux/internal/domain/catalog"
)

// CatalogAdminHandler serves catalog CRUD for the back office.
//
// Routes:
//   - POST   /admin/items            (create)
//   - PUT    /admin/items/{id}       (update)
//   - DELETE /admin/items/{id}       (delete, idempotent)
//   - POST   /admin/items/image      (multipart upload, returns imageUri)
type CatalogAdminHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogAdminHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogAdminHandler{uc: uc}
}

func (h *CatalogAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "catalog admin handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/image"):
		h.handleUploadImage(w, r)
	case r.Method == http.MethodPost:
		h.handleCreate(w, r)
	case r.Method == http.MethodPut:
		h.handleUpdate(w, r, adminItemIDFromPath(path))
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, adminItemIDFromPath(path))
	default:
		methodNotAllowed(w)
	}
}

type itemReq struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURI    string  `json:"imageUri"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Details     string  `json:"details,omitempty"`
}

func (req itemReq) toDomain(id string) catalogdom.Item {
	return catalogdom.Item{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		ImageURI:    strings.TrimSpace(req.ImageURI),
		Description: strings.TrimSpace(req.Description),
		Category:    catalogdom.Category(strings.TrimSpace(req.Category)),
		Details:     strings.TrimSpace(req.Details),
	}
}

func (h *CatalogAdminHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req itemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.uc.Create(r.Context(), req.toDomain(req.ID))
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogAdminHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		writeErr(w, http.StatusBadRequest, "item id is required in path")
		return
	}
	var req itemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.uc.Update(r.Context(), req.toDomain(id)); err != nil {
		if errors.Is(err, usecase.ErrCatalogInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (h *CatalogAdminHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		writeErr(w, http.StatusBadRequest, "item id is required in path")
		return
	}
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogAdminHandler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	// 10MB cap; product shots are pre-resized by the admin app
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	uri, err := h.uc.UploadImage(r.Context(), header.Filename, contentType, file)
	if err != nil {
		log.Printf("[admin_catalog_handler] image upload failed file=%q err=%v", header.Filename, err)
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"imageUri": uri})
}

func adminItemIDFromPath(path string) string {
	const marker = "/items/"
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
