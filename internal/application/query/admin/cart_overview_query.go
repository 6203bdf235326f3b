// internal/application/query/admin/cart_overview_query.go
package admin

import (
	"context"
	"errors"

	cartdom "bijoux/internal/domain/cart"
	shopperdom "bijoux/internal/domain/shopper"
)

// CartOverviewRow is one shopper with a non-empty cart.
type CartOverviewRow struct {
	UserID    string          `json:"userId"`
	UserEmail string          `json:"userEmail"`
	CartItems []cartdom.Entry `json:"cartItems"`
}

// CartOverviewQuery is the admin "all carts" read model: iterate shoppers and
// collect everyone with at least one cart entry. O(users) subcollection reads,
// which matches the admin dashboard's access pattern (rare, full-scan view).
type CartOverviewQuery struct {
	shoppers shopperdom.Repository
	carts    cartdom.Repository
}

func NewCartOverviewQuery(shoppers shopperdom.Repository, carts cartdom.Repository) *CartOverviewQuery {
	return &CartOverviewQuery{shoppers: shoppers, carts: carts}
}

func (q *CartOverviewQuery) Run(ctx context.Context) ([]CartOverviewRow, error) {
	if q == nil || q.shoppers == nil || q.carts == nil {
		return nil, errors.New("cart_overview_query: not configured")
	}

	users, err := q.shoppers.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]CartOverviewRow, 0, len(users))
	for _, u := range users {
		entries, err := q.carts.List(ctx, u.UID)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		email := u.Email
		if email == "" {
			email = "No email provided"
		}
		rows = append(rows, CartOverviewRow{
			UserID:    u.UID,
			UserEmail: email,
			CartItems: entries,
		})
	}
	return rows, nil
}
