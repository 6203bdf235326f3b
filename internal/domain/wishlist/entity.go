// internal/domain/wishlist/entity.go
package wishlist

import (
	"errors"
	"strings"
	"time"

	"bijoux/internal/domain/catalog"
)

var ErrInvalidEntry = errors.New("wishlist: invalid entry")

// Entry is a per-shopper bookmark of a catalog item. Same shape as a cart
// entry minus quantity.
//
// Storage (Firestore):
// - collection: users/{uid}/wishlistItems ✅ owner-scoped
//   (the legacy app wrote to a single global wishlistItems collection — that
//   was a missing tenancy key, corrected here)
// - docId: ItemID (deterministic key, same rationale as the cart)
type Entry struct {
	ItemID string `json:"id" firestore:"id"`

	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	ImageURI    string  `json:"imageUri" firestore:"imageUri"`
	Description string  `json:"description" firestore:"description"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CatalogKey satisfies membership.Keyed.
func (e Entry) CatalogKey() string { return e.ItemID }

// NewEntry builds a wishlist entry from a catalog item snapshot.
func NewEntry(it catalog.Item, now time.Time) (Entry, error) {
	id := strings.TrimSpace(it.ID)
	if id == "" {
		return Entry{}, ErrInvalidEntry
	}
	if it.Price < 0 {
		return Entry{}, ErrInvalidEntry
	}
	return Entry{
		ItemID:      id,
		Name:        it.Name,
		Price:       it.Price,
		ImageURI:    it.ImageURI,
		Description: it.Description,
		CreatedAt:   now,
	}, nil
}
