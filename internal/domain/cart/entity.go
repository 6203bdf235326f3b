// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bijoux/internal/domain/catalog"
)

var (
	ErrInvalidEntry = errors.New("cart: invalid entry")

	// ErrEntryNotFound is returned when a mutation targets an entry that no
	// longer exists (already purchased or removed by a concurrent action).
	// Recoverable: the caller should refresh its cart view, not treat it as fatal.
	ErrEntryNotFound = errors.New("cart: entry not found")
)

// DuplicateError is the expected, non-exceptional outcome of adding an item
// that is already in the cart. It carries the existing entry so the caller can
// route to a quantity update instead.
type DuplicateError struct {
	Existing Entry
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("cart: item %q is already in the cart", e.Existing.ItemID)
}

// Entry is one cart line for one shopper.
//
// Storage (Firestore):
// - collection: users/{uid}/cartItems
// - docId: ItemID ✅ (deterministic key — a repeated add overwrites instead of
//   inserting a second doc, so the check-then-act race cannot duplicate lines)
// - fields: denormalized catalog snapshot + quantity + createdAt
type Entry struct {
	// ItemID is the catalog item id (also the docId).
	ItemID string `json:"id" firestore:"id"`

	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	ImageURI    string  `json:"imageUri" firestore:"imageUri"`
	Description string  `json:"description" firestore:"description"`

	// Quantity is always >= 1. Removal is an explicit action, never reached
	// by decrementing.
	Quantity int `json:"quantity" firestore:"quantity"`

	// CreatedAt drives display order (insertion order, not semantically
	// significant).
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CatalogKey satisfies membership.Keyed.
func (e Entry) CatalogKey() string { return e.ItemID }

// NewEntry builds a cart entry from a catalog item snapshot.
// qty <= 0 falls back to 1 (default add quantity).
func NewEntry(it catalog.Item, qty int, now time.Time) (Entry, error) {
	id := strings.TrimSpace(it.ID)
	if id == "" {
		return Entry{}, ErrInvalidEntry
	}
	if it.Price < 0 {
		return Entry{}, ErrInvalidEntry
	}
	if qty <= 0 {
		qty = 1
	}
	return Entry{
		ItemID:      id,
		Name:        it.Name,
		Price:       it.Price,
		ImageURI:    it.ImageURI,
		Description: it.Description,
		Quantity:    qty,
		CreatedAt:   now,
	}, nil
}

// ApplyDelta applies a signed quantity delta with a floor of 1.
// Decrementing at quantity 1 is a no-op; the entry never reaches 0 or below.
// Returns the new quantity.
func (e *Entry) ApplyDelta(delta int) int {
	q := e.Quantity + delta
	if q < 1 {
		q = 1
	}
	e.Quantity = q
	return q
}

// Validate checks the stored-entry invariants.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.ItemID) == "" {
		return ErrInvalidEntry
	}
	if e.Quantity < 1 {
		return ErrInvalidEntry
	}
	if e.Price < 0 {
		return ErrInvalidEntry
	}
	return nil
}
