// internal/application/query/admin/purchase_overview_query.go
package admin

import (
	"context"
	"errors"

	orderdom "bijoux/internal/domain/order"
	shopperdom "bijoux/internal/domain/shopper"
)

// PurchaseOverviewRow is one shopper with at least one completed order.
type PurchaseOverviewRow struct {
	UserID    string           `json:"userId"`
	UserEmail string           `json:"userEmail"`
	Orders    []orderdom.Order `json:"orders"`
}

// PurchaseOverviewQuery is the admin purchases rollup (per-user order history).
type PurchaseOverviewQuery struct {
	shoppers shopperdom.Repository
	orders   orderdom.Repository
}

func NewPurchaseOverviewQuery(shoppers shopperdom.Repository, orders orderdom.Repository) *PurchaseOverviewQuery {
	return &PurchaseOverviewQuery{shoppers: shoppers, orders: orders}
}

func (q *PurchaseOverviewQuery) Run(ctx context.Context) ([]PurchaseOverviewRow, error) {
	if q == nil || q.shoppers == nil || q.orders == nil {
		return nil, errors.New("purchase_overview_query: not configured")
	}

	users, err := q.shoppers.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]PurchaseOverviewRow, 0, len(users))
	for _, u := range users {
		orders, err := q.orders.ListByOwner(ctx, u.UID)
		if err != nil {
			return nil, err
		}
		if len(orders) == 0 {
			continue
		}
		email := u.Email
		if email == "" {
			email = "No email provided"
		}
		rows = append(rows, PurchaseOverviewRow{
			UserID:    u.UID,
			UserEmail: email,
			Orders:    orders,
		})
	}
	return rows, nil
}
