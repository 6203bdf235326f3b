// internal/domain/wishlist/repository_port.go
package wishlist

import "context"

// Repository is the persistence port for one shopper's wishlist.
//
// Storage (Firestore):
// - collection: users/{uid}/wishlistItems
// - docId: catalog item id
type Repository interface {
	// List returns the full wishlist snapshot ordered by createdAt.
	List(ctx context.Context, ownerID string) ([]Entry, error)

	// Upsert writes the entry under docId = entry.ItemID.
	Upsert(ctx context.Context, ownerID string, e Entry) error

	// Delete removes the entry. Idempotent.
	Delete(ctx context.Context, ownerID, itemID string) error
}
