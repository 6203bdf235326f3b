// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the persistence port for one shopper's cart.
//
// Storage (Firestore):
// - collection: users/{uid}/cartItems
// - docId: catalog item id (deterministic key; see entity.go)
//
// Every method takes the owner uid — the cart is strictly owner-scoped.
type Repository interface {
	// List returns the full cart snapshot ordered by createdAt (insertion order).
	List(ctx context.Context, ownerID string) ([]Entry, error)

	// Upsert writes the entry under docId = entry.ItemID.
	// A concurrent add to the same item overwrites rather than duplicating.
	Upsert(ctx context.Context, ownerID string, e Entry) error

	// UpdateQuantity patches only the quantity field.
	// Returns ErrEntryNotFound when the entry no longer exists.
	UpdateQuantity(ctx context.Context, ownerID, itemID string, qty int) error

	// Delete removes the entry. Idempotent: deleting an absent entry is not
	// an error (a concurrent checkout may already have consumed it).
	Delete(ctx context.Context, ownerID, itemID string) error
}
