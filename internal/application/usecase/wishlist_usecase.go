// internal/application/usecase/wishlist_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	catalogdom "bijoux/internal/domain/catalog"
	"bijoux/internal/domain/membership"
	wishdom "bijoux/internal/domain/wishlist"
)

var ErrWishlistInvalidArgument = errors.New("wishlist_usecase: invalid argument")

// ToggleResult reports which way a wishlist toggle went.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// WishlistUsecase owns the heart-icon toggle.
type WishlistUsecase struct {
	wishlists wishdom.Repository
	catalog   catalogdom.Repository
	clock     Clock
}

func NewWishlistUsecase(wishlists wishdom.Repository, catalog catalogdom.Repository) *WishlistUsecase {
	return &WishlistUsecase{wishlists: wishlists, catalog: catalog, clock: systemClock{}}
}

func NewWishlistUsecaseWithClock(wishlists wishdom.Repository, catalog catalogdom.Repository, clock Clock) *WishlistUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &WishlistUsecase{wishlists: wishlists, catalog: catalog, clock: clock}
}

// List returns the shopper's wishlist.
func (uc *WishlistUsecase) List(ctx context.Context, ownerID string) ([]wishdom.Entry, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrWishlistInvalidArgument
	}
	return uc.wishlists.List(ctx, owner)
}

// Toggle adds the item when absent and removes it when present.
// Check-then-act with no atomicity guarantee against concurrent toggles from
// the same shopper; the deterministic docId keeps the worst case at a
// harmless double-write, never a duplicate bookmark.
func (uc *WishlistUsecase) Toggle(ctx context.Context, ownerID, itemID string) (ToggleResult, error) {
	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return "", ErrWishlistInvalidArgument
	}

	snapshot, err := uc.wishlists.List(ctx, owner)
	if err != nil {
		return "", err
	}

	if membership.Exists(snapshot, id) {
		if err := uc.wishlists.Delete(ctx, owner, id); err != nil {
			return "", err
		}
		return ToggleRemoved, nil
	}

	it, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	e, err := wishdom.NewEntry(it, uc.clock.Now())
	if err != nil {
		return "", err
	}
	if err := uc.wishlists.Upsert(ctx, owner, e); err != nil {
		return "", err
	}
	return ToggleAdded, nil
}
