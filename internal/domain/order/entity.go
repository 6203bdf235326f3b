// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	"bijoux/internal/domain/cart"
	"bijoux/internal/domain/money"
)

var (
	// ErrEmptySelection rejects a checkout with no entries — an order with a
	// zero total must never be produced.
	ErrEmptySelection = errors.New("order: empty selection")

	// ErrInvalidSelection rejects malformed entries (qty < 1, negative price).
	ErrInvalidSelection = errors.New("order: invalid selection")

	ErrNotFound = errors.New("order: not found")
)

// StatusCompleted is the only status the storefront writes. The admin report
// filters on it, matching the legacy orders screen.
const StatusCompleted = "Completed"

// ItemSnapshot is a purchased cart entry frozen into an order.
// Snapshot by value: later cart mutations must not change a placed order.
type ItemSnapshot struct {
	ItemID   string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	ImageURI string  `json:"imageUri" firestore:"imageUri"`
	Quantity int     `json:"quantity" firestore:"quantity"`
}

// Order is an immutable record of a completed purchase.
//
// Storage (Firestore):
// - collection: users/{uid}/orders
// - docId: store-generated
// Never mutated or deleted once created.
type Order struct {
	ID      string `json:"id" firestore:"id"`
	OwnerID string `json:"ownerId" firestore:"ownerId"`

	Items  []ItemSnapshot `json:"items" firestore:"items"`
	Total  float64        `json:"total" firestore:"total"`
	Status string         `json:"status" firestore:"status"`

	Date time.Time `json:"date" firestore:"date"`
}

// New freezes the selected cart entries into an order.
// Total = Σ price*quantity rounded to 2 decimal places.
func New(ownerID string, selected []cart.Entry, now time.Time) (Order, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return Order{}, ErrInvalidSelection
	}
	if len(selected) == 0 {
		return Order{}, ErrEmptySelection
	}

	items := make([]ItemSnapshot, 0, len(selected))
	lines := make([]money.Line, 0, len(selected))
	for _, e := range selected {
		if err := e.Validate(); err != nil {
			return Order{}, ErrInvalidSelection
		}
		items = append(items, ItemSnapshot{
			ItemID:   e.ItemID,
			Name:     e.Name,
			Price:    e.Price,
			ImageURI: e.ImageURI,
			Quantity: e.Quantity,
		})
		lines = append(lines, money.Line{Price: e.Price, Qty: e.Quantity})
	}

	return Order{
		OwnerID: owner,
		Items:   items,
		Total:   money.ToFloat(money.Total(lines)),
		Status:  StatusCompleted,
		Date:    now,
	}, nil
}

// EntryIDs returns the catalog ids of the purchased entries, i.e. the cart
// docIds that must be deleted after the order is placed.
func (o Order) EntryIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ItemID)
	}
	return ids
}
