// internal/adapters/in/http/store/handler/wishlist_handler_test.go
package storeHandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "bijoux/internal/application/usecase"
	catalogdom "bijoux/internal/domain/catalog"
)

func newWishlistFixture(t *testing.T, items ...catalogdom.Item) (http.Handler, *fakeWishlistRepo) {
	t.Helper()
	wish := newFakeWishlistRepo()
	catalog := newFakeCatalogRepo(items...)
	uc := usecase.NewWishlistUsecaseWithClock(wish, catalog, fixedClock{testNow})
	return NewWishlistHandler(uc), wish
}

func toggleOnce(t *testing.T, h http.Handler, itemID string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/wishlist/toggle", `{"itemId":"`+itemID+`"}`))

	var body struct {
		ItemID string `json:"itemId"`
		Result string `json:"result"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body.Result
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	h, wish := newWishlistFixture(t, catalogdom.Item{
		ID: "e1", Name: "Mira Drop Earrings", Price: 54.75, Category: catalogdom.CategoryEarring,
	})

	code, result := toggleOnce(t, h, "e1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "added", result)
	assert.Len(t, wish.entries, 1)

	code, result = toggleOnce(t, h, "e1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "removed", result)
	assert.Empty(t, wish.entries)
}

func TestWishlistToggleUnknownItem(t *testing.T) {
	h, _ := newWishlistFixture(t)

	code, _ := toggleOnce(t, h, "ghost")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestWishlistList(t *testing.T) {
	h, _ := newWishlistFixture(t, catalogdom.Item{
		ID: "r1", Name: "Ember Stacking Ring", Price: 42.50, Category: catalogdom.CategoryRing,
	})

	code, result := toggleOnce(t, h, "r1")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "added", result)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodGet, "/store/me/wishlist", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []wishEntryDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "r1", body.Items[0].ItemID)
	assert.Equal(t, "Ember Stacking Ring", body.Items[0].Name)
}

func TestWishlistRequiresAuth(t *testing.T) {
	h, _ := newWishlistFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/me/wishlist", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
