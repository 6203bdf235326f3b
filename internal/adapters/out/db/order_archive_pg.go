// internal/adapters/out/db/order_archive_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	dbcommon "bijoux/internal/adapters/out/db/common"
	orderdom "bijoux/internal/domain/order"
)

// OrderArchivePG mirrors completed orders into PostgreSQL for reporting.
// Firestore stays the system of record; this table only feeds the back-office
// report queries that Firestore cannot express (cross-user aggregation).
type OrderArchivePG struct {
	DB *sql.DB
}

func NewOrderArchivePG(db *sql.DB) *OrderArchivePG {
	return &OrderArchivePG{DB: db}
}

// EnsureSchema creates the archive tables when missing. Called once at boot;
// the archive has no migration history worth tracking.
func (r *OrderArchivePG) EnsureSchema(ctx context.Context) error {
	if r == nil || r.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}
	const ddl = `
CREATE TABLE IF NOT EXISTS archived_orders (
  id         TEXT PRIMARY KEY,
  owner_id   TEXT NOT NULL,
  total      NUMERIC(12,2) NOT NULL,
  status     TEXT NOT NULL,
  placed_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS archived_order_items (
  order_id  TEXT NOT NULL REFERENCES archived_orders(id) ON DELETE CASCADE,
  item_id   TEXT NOT NULL,
  name      TEXT NOT NULL,
  price     NUMERIC(12,2) NOT NULL,
  quantity  INTEGER NOT NULL,
  PRIMARY KEY (order_id, item_id)
);
CREATE INDEX IF NOT EXISTS idx_archived_orders_placed_at ON archived_orders (placed_at DESC);`
	_, err := r.DB.ExecContext(ctx, ddl)
	return err
}

// Archive inserts the order and its line items in one transaction.
// Re-archiving the same order is a no-op, so the best-effort retry path in
// checkout can call this twice without corrupting the report.
func (r *OrderArchivePG) Archive(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}
	id := strings.TrimSpace(o.ID)
	owner := strings.TrimSpace(o.OwnerID)
	if id == "" || owner == "" {
		return errors.New("order_archive_pg: order id or owner is empty")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	txCtx := dbcommon.CtxWithTx(ctx, tx)
	run := dbcommon.GetRunner(txCtx, r.DB)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	const insOrder = `
INSERT INTO archived_orders (id, owner_id, total, status, placed_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`
	res, err := run.ExecContext(txCtx, insOrder, id, owner, o.Total, o.Status, o.Date.UTC())
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		// already archived
		_ = tx.Rollback()
		return nil
	}

	const insItem = `
INSERT INTO archived_order_items (order_id, item_id, name, price, quantity)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (order_id, item_id) DO NOTHING`
	for _, it := range o.Items {
		if _, err := run.ExecContext(txCtx, insItem, id, it.ItemID, it.Name, it.Price, it.Quantity); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ===============================
// Reporting queries
// ===============================

// CompletedOrderRow is one line of the back-office completed-orders report.
type CompletedOrderRow struct {
	OrderID   string    `json:"orderId"`
	OwnerID   string    `json:"ownerId"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"itemCount"`
	PlacedAt  time.Time `json:"placedAt"`
}

// ListCompleted returns archived orders within [from, to), newest first.
// Zero times disable the corresponding bound.
func (r *OrderArchivePG) ListCompleted(ctx context.Context, from, to time.Time, page, perPage int) ([]CompletedOrderRow, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("order_archive_pg: db is nil")
	}
	run := dbcommon.GetRunner(ctx, r.DB)

	where := []string{"o.status = 'Completed'"}
	args := []any{}
	if !from.IsZero() {
		args = append(args, from.UTC())
		where = append(where, fmt.Sprintf("o.placed_at >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to.UTC())
		where = append(where, fmt.Sprintf("o.placed_at < $%d", len(args)))
	}

	_, limit, offset := dbcommon.NormalizePage(page, perPage, 50, 200)
	args = append(args, limit, offset)

	q := fmt.Sprintf(`
SELECT o.id, o.owner_id, o.total, COUNT(i.item_id), o.placed_at
FROM archived_orders o
LEFT JOIN archived_order_items i ON i.order_id = o.id
WHERE %s
GROUP BY o.id, o.owner_id, o.total, o.placed_at
ORDER BY o.placed_at DESC, o.id DESC
LIMIT $%d OFFSET $%d`, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := run.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompletedOrderRow
	for rows.Next() {
		var row CompletedOrderRow
		if err := rows.Scan(&row.OrderID, &row.OwnerID, &row.Total, &row.ItemCount, &row.PlacedAt); err != nil {
			return nil, err
		}
		row.PlacedAt = row.PlacedAt.UTC()
		out = append(out, row)
	}
	return out, rows.Err()
}
