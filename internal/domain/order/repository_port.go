// internal/domain/order/repository_port.go
package order

import "context"

// Repository is the persistence port for orders.
type Repository interface {
	// Create stores the order under users/{uid}/orders and returns it with the
	// store-assigned id filled in.
	Create(ctx context.Context, o Order) (Order, error)

	GetByID(ctx context.Context, ownerID, id string) (Order, error)

	// ListByOwner returns the owner's orders, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]Order, error)
}

// AtomicPlacer is implemented by stores with a transaction primitive.
// PlaceAndClear creates the order and deletes the consumed cart entries in one
// atomic commit, eliminating the partial-failure window between the two writes.
//
// The checkout usecase type-asserts for this and falls back to the two-step
// sequence (with PartialCheckoutFailure reporting) when it is absent.
type AtomicPlacer interface {
	PlaceAndClear(ctx context.Context, o Order, cartEntryIDs []string) (Order, error)
}
