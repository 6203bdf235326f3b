// internal/adapters/in/http/store/handler/catalog_handler.go
package storeHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "bijoux/internal/application/usecase"
	catalogdom "bijoux/internal/domain/catalog"
)

// CatalogHandler serves the public catalog endpoints.
//
// Routes:
//   - GET /store/items?category=necklace
//   - GET /store/items/{id}
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if id := itemIDFromPath(path); id != "" {
		h.handleGet(w, r, id)
		return
	}
	h.handleBrowse(w, r)
}

func (h *CatalogHandler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	items, err := h.uc.Browse(r.Context(), category)
	if err != nil {
		if errors.Is(err, catalogdom.ErrInvalidCategory) {
			writeErr(w, http.StatusBadRequest, "unknown category")
			return
		}
		writeErr(w, statusFromErr(err), err.Error())
		return
	}

	out := make([]itemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (h *CatalogHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	it, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

// itemIDFromPath extracts {id} from .../items/{id}; empty for the list path.
func itemIDFromPath(path string) string {
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
