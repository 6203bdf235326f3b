// internal/adapters/in/http/store/handler/helper_handler.go
package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	cartdom "bijoux/internal/domain/cart"
	catalogdom "bijoux/internal/domain/catalog"
	orderdom "bijoux/internal/domain/order"
	storagedom "bijoux/internal/domain/storage"
	wishdom "bijoux/internal/domain/wishlist"
)

// ============================================================
// HTTP helpers
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(msg)})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
}

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func toRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// statusFromErr maps domain errors to HTTP status codes. Handlers call this
// after the usecase-specific cases (duplicate, partial failure) are handled.
func statusFromErr(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, catalogdom.ErrNotFound),
		errors.Is(err, cartdom.ErrEntryNotFound),
		errors.Is(err, orderdom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storagedom.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, orderdom.ErrEmptySelection),
		errors.Is(err, orderdom.ErrInvalidSelection),
		errors.Is(err, catalogdom.ErrInvalidItem),
		errors.Is(err, catalogdom.ErrInvalidCategory),
		errors.Is(err, cartdom.ErrInvalidEntry),
		errors.Is(err, wishdom.ErrInvalidEntry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ============================================================
// Response DTOs
// ============================================================

type itemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURI    string  `json:"imageUri"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Details     string  `json:"details,omitempty"`
}

func toItemDTO(it catalogdom.Item) itemDTO {
	return itemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		ImageURI:    it.ImageURI,
		Description: it.Description,
		Category:    string(it.Category),
		Details:     it.Details,
	}
}

type cartEntryDTO struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURI    string  `json:"imageUri"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CreatedAt   string  `json:"createdAt"`
}

func toCartEntryDTO(e cartdom.Entry) cartEntryDTO {
	return cartEntryDTO{
		ItemID:      e.ItemID,
		Name:        e.Name,
		Price:       e.Price,
		ImageURI:    e.ImageURI,
		Description: e.Description,
		Quantity:    e.Quantity,
		CreatedAt:   toRFC3339(e.CreatedAt),
	}
}

func toCartEntryDTOs(entries []cartdom.Entry) []cartEntryDTO {
	out := make([]cartEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCartEntryDTO(e))
	}
	return out
}

type wishEntryDTO struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURI    string  `json:"imageUri"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

func toWishEntryDTO(e wishdom.Entry) wishEntryDTO {
	return wishEntryDTO{
		ItemID:      e.ItemID,
		Name:        e.Name,
		Price:       e.Price,
		ImageURI:    e.ImageURI,
		Description: e.Description,
		CreatedAt:   toRFC3339(e.CreatedAt),
	}
}

type orderItemDTO struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURI string  `json:"imageUri"`
	Quantity int     `json:"quantity"`
}

type orderDTO struct {
	ID     string         `json:"id"`
	Items  []orderItemDTO `json:"items"`
	Total  float64        `json:"total"`
	Status string         `json:"status"`
	Date   string         `json:"date"`
}

func toOrderDTO(o orderdom.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Price:    it.Price,
			ImageURI: it.ImageURI,
			Quantity: it.Quantity,
		})
	}
	return orderDTO{
		ID:     o.ID,
		Items:  items,
		Total:  o.Total,
		Status: o.Status,
		Date:   toRFC3339(o.Date),
	}
}
