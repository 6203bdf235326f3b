// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "bijoux/internal/domain/cart"
	catalogdom "bijoux/internal/domain/catalog"
	"bijoux/internal/domain/membership"
)

var ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")

// CartUsecase coordinates cart operations for one shopper.
//
// Write pipeline per user action:
//   fetch snapshot (read) → membership / quantity decision → single write
// Between the read and the write the store's true state may change (another
// device, another in-flight tap). The deterministic docId (= catalog id) makes
// the racy add collapse into an overwrite instead of a duplicate line.
type CartUsecase struct {
	carts   cartdom.Repository
	catalog catalogdom.Repository
	clock   Clock
}

func NewCartUsecase(carts cartdom.Repository, catalog catalogdom.Repository) *CartUsecase {
	return &CartUsecase{carts: carts, catalog: catalog, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(carts cartdom.Repository, catalog catalogdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{carts: carts, catalog: catalog, clock: clock}
}

// List returns the shopper's cart in insertion order.
func (uc *CartUsecase) List(ctx context.Context, ownerID string) ([]cartdom.Entry, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrCartInvalidArgument
	}
	return uc.carts.List(ctx, owner)
}

// Add puts a catalog item into the cart with the given quantity (default 1).
//
// If the item is already present, Add returns *cartdom.DuplicateError carrying
// the existing entry and leaves the cart unchanged — the caller decides whether
// to route to ApplyDelta instead. This is the expected "already in cart" path,
// not a storage failure.
func (uc *CartUsecase) Add(ctx context.Context, ownerID, itemID string, qty int) (cartdom.Entry, error) {
	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return cartdom.Entry{}, ErrCartInvalidArgument
	}

	it, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		return cartdom.Entry{}, err
	}

	snapshot, err := uc.carts.List(ctx, owner)
	if err != nil {
		return cartdom.Entry{}, err
	}
	if existing, ok := membership.Find(snapshot, id); ok {
		return cartdom.Entry{}, &cartdom.DuplicateError{Existing: existing}
	}

	e, err := cartdom.NewEntry(it, qty, uc.clock.Now())
	if err != nil {
		return cartdom.Entry{}, err
	}
	if err := uc.carts.Upsert(ctx, owner, e); err != nil {
		return cartdom.Entry{}, err
	}
	return e, nil
}

// ApplyDelta applies a signed quantity delta to an existing entry with a floor
// of 1 and persists only the quantity field. Returns the new quantity.
//
// When the entry vanished between the read and the write (concurrent checkout
// or removal), the error is cartdom.ErrEntryNotFound and the caller should
// refresh its view.
func (uc *CartUsecase) ApplyDelta(ctx context.Context, ownerID, itemID string, delta int) (int, error) {
	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return 0, ErrCartInvalidArgument
	}

	snapshot, err := uc.carts.List(ctx, owner)
	if err != nil {
		return 0, err
	}
	e, ok := membership.Find(snapshot, id)
	if !ok {
		return 0, cartdom.ErrEntryNotFound
	}

	newQty := e.ApplyDelta(delta)
	if err := uc.carts.UpdateQuantity(ctx, owner, id, newQty); err != nil {
		return 0, err
	}
	return newQty, nil
}

// Remove deletes the entry unconditionally. Idempotent — removing an entry a
// concurrent checkout already consumed is not an error.
func (uc *CartUsecase) Remove(ctx context.Context, ownerID, itemID string) error {
	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return ErrCartInvalidArgument
	}
	return uc.carts.Delete(ctx, owner, id)
}
