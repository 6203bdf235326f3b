// internal/adapters/in/http/store/handler/cart_handler_test.go
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

func newCartFixture(t *testing.T, items ...catalogdom.Item) (http.Handler, *fakeCartRepo) {
	t.Helper()
	carts := newFakeCartRepo()
	catalog := newFakeCatalogRepo(items...)
	uc := usecase.NewCartUsecaseWithClock(carts, catalog, fixedClock{testNow})
	return NewCartHandler(uc), carts
}

func TestCartHandlerAdd(t *testing.T) {
	h, carts := newCartFixture(t, catalogdom.Item{
		ID: "n1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items",
		`{"itemId":"n1","quantity":2}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got cartEntryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "n1", got.ItemID)
	assert.Equal(t, "Aurelia Chain Necklace", got.Name)
	assert.Equal(t, 2, got.Quantity)
	assert.Len(t, carts.entries, 1)
}

func TestCartHandlerAddDuplicateConflict(t *testing.T) {
	h, _ := newCartFixture(t, catalogdom.Item{
		ID: "n1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace,
	})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"n1"}`))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"n1"}`))

	require.Equal(t, http.StatusConflict, second.Code)

	var body struct {
		Error string       `json:"error"`
		Item  cartEntryDTO `json:"item"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "already in cart", body.Error)
	assert.Equal(t, "n1", body.Item.ItemID)
	assert.Equal(t, 1, body.Item.Quantity)
}

func TestCartHandlerAddUnknownItem(t *testing.T) {
	h, _ := newCartFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"ghost"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandlerAddValidation(t *testing.T) {
	h, _ := newCartFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"  "}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandlerRequiresAuth(t *testing.T) {
	h, _ := newCartFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/me/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandlerApplyDeltaFloorsAtOne(t *testing.T) {
	h, _ := newCartFixture(t, catalogdom.Item{
		ID: "b1", Name: "Seren Twist Bangle", Price: 64, Category: catalogdom.CategoryBangle,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"b1"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPatch, "/store/me/cart/items",
		`{"itemId":"b1","delta":-5}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b1", body.ItemID)
	assert.Equal(t, 1, body.Quantity, "decrement never drops below 1")
}

func TestCartHandlerApplyDeltaMissingEntry(t *testing.T) {
	h, _ := newCartFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPatch, "/store/me/cart/items",
		`{"itemId":"gone","delta":1}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandlerRemove(t *testing.T) {
	h, carts := newCartFixture(t, catalogdom.Item{
		ID: "r1", Name: "Vela Solitaire Ring", Price: 110, Category: catalogdom.CategoryRing,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"r1"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodDelete, "/store/me/cart/items", `{"itemId":"r1"}`))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, carts.entries)

	// removing again is idempotent
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodDelete, "/store/me/cart/items", `{"itemId":"r1"}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartHandlerList(t *testing.T) {
	h, _ := newCartFixture(t,
		catalogdom.Item{ID: "e1", Name: "Nova Stud Earrings", Price: 38, Category: catalogdom.CategoryEarring},
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/cart/items", `{"itemId":"e1"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodGet, "/store/me/cart", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []cartEntryDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "e1", body.Items[0].ItemID)
}

func TestCartHandlerMethodNotAllowed(t *testing.T) {
	h, _ := newCartFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedReq(http.MethodPut, "/store/me/cart/items", `{"itemId":"x"}`))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
