// internal/application/usecase/wishlist_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistUC(t *testing.T) (*WishlistUsecase, *fakeWishlistRepo) {
	t.Helper()
	wl := newFakeWishlistRepo()
	uc := NewWishlistUsecaseWithClock(wl, newFakeCatalogRepo(necklace()), fixedClock{testNow})
	return uc, wl
}

func TestWishlistToggleAddsWhenAbsent(t *testing.T) {
	uc, _ := newWishlistUC(t)
	ctx := context.Background()

	res, err := uc.Toggle(ctx, owner, "neck-01")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, res)

	got, err := uc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "neck-01", got[0].ItemID)
	assert.Equal(t, 120.50, got[0].Price)
}

func TestWishlistToggleIsItsOwnInverse(t *testing.T) {
	uc, _ := newWishlistUC(t)
	ctx := context.Background()

	res, err := uc.Toggle(ctx, owner, "neck-01")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, res)

	res, err = uc.Toggle(ctx, owner, "neck-01")
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, res)

	got, err := uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, got, "toggle twice must return to the original membership state")
}

func TestWishlistToggleInvalidArguments(t *testing.T) {
	uc, _ := newWishlistUC(t)
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "", "neck-01")
	assert.ErrorIs(t, err, ErrWishlistInvalidArgument)
	_, err = uc.Toggle(ctx, owner, "")
	assert.ErrorIs(t, err, ErrWishlistInvalidArgument)
}
