// internal/adapters/in/http/admin/handler/helper_handler.go
package adminHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	catalogdom "bijoux/internal/domain/catalog"
	shopperdom "bijoux/internal/domain/shopper"
	storagedom "bijoux/internal/domain/storage"
)

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

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func toRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func statusFromErr(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, catalogdom.ErrNotFound),
		errors.Is(err, shopperdom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storagedom.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, catalogdom.ErrInvalidItem),
		errors.Is(err, catalogdom.ErrInvalidCategory),
		errors.Is(err, shopperdom.ErrInvalidShopper):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
