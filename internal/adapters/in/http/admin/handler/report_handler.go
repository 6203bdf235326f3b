// internal/adapters/in/http/admin/handler/report_handler.go
package adminHandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bijoux/internal/adapters/out/db"
)

// CompletedOrdersReport abstracts the Postgres archive query so the handler
// can be tested without a database.
type CompletedOrdersReport interface {
	ListCompleted(ctx context.Context, from, to time.Time, page, perPage int) ([]db.CompletedOrderRow, error)
}

// ReportHandler serves archive-backed reports.
//
// Routes:
//   - GET /admin/reports/completed-orders?from=2026-08-01&to=2026-09-01&page=1&perPage=50
type ReportHandler struct {
	report CompletedOrdersReport
}

func NewReportHandler(report CompletedOrdersReport) http.Handler {
	return &ReportHandler{report: report}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.report == nil {
		writeErr(w, http.StatusServiceUnavailable, "reporting store is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	from, ok := parseDateParam(q.Get("from"))
	if !ok {
		writeErr(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, ok := parseDateParam(q.Get("to"))
	if !ok {
		writeErr(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}
	page := parseIntDefault(q.Get("page"), 1)
	perPage := parseIntDefault(q.Get("perPage"), 50)

	rows, err := h.report.ListCompleted(r.Context(), from, to, page, perPage)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": rows})
}

// parseDateParam returns a zero time for the empty string (bound disabled).
func parseDateParam(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
