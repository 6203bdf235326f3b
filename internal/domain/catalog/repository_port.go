// internal/domain/catalog/repository_port.go
package catalog

import "context"

// Repository is the persistence port for catalog items.
//
// Storage (Firestore):
// - collection: jewelryItems (global; the catalog is shared by all shoppers)
// - docId: item id
type Repository interface {
	GetByID(ctx context.Context, id string) (Item, error)

	// List returns the catalog, optionally filtered by category.
	// CategoryAll returns everything.
	List(ctx context.Context, category Category) ([]Item, error)

	// Create stores a new item. When it.ID is empty the adapter assigns one
	// and returns the stored item.
	Create(ctx context.Context, it Item) (Item, error)

	// Update overwrites an existing item; ErrNotFound when absent.
	Update(ctx context.Context, it Item) error

	// Delete is idempotent; deleting an absent item is not an error.
	Delete(ctx context.Context, id string) error
}
