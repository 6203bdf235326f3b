// internal/adapters/in/http/store/handler/checkout_handler_test.go
package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "bijoux/internal/application/usecase"
	cartdom "bijoux/internal/domain/cart"
	catalogdom "bijoux/internal/domain/catalog"
	orderdom "bijoux/internal/domain/order"
	shopperdom "bijoux/internal/domain/shopper"
)

type checkoutFixture struct {
	handler http.Handler
	carts   *fakeCartRepo
	orders  *fakeOrderRepo
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	carts := newFakeCartRepo()
	orders := &fakeOrderRepo{}
	shoppers := newFakeShopperRepo(shopperdom.Shopper{UID: "uid-1", Email: "shopper@example.com"})
	uc := usecase.NewCheckoutUsecaseWithClock(carts, orders, shoppers, nil, nil, fixedClock{testNow})
	return &checkoutFixture{handler: NewCheckoutHandler(uc), carts: carts, orders: orders}
}

func (f *checkoutFixture) seedCart(t *testing.T, it catalogdom.Item, qty int) {
	t.Helper()
	e, err := cartdom.NewEntry(it, qty, testNow)
	require.NoError(t, err)
	f.carts.entries[e.ItemID] = e
}

func TestCheckoutWholeCartWithEmptyBody(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t, catalogdom.Item{ID: "a1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace}, 1)
	f.seedCart(t, catalogdom.Item{ID: "b2", Name: "Seren Twist Bangle", Price: 64, Category: catalogdom.CategoryBangle}, 2)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/checkout", ""))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got orderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Items, 2)
	assert.InDelta(t, 248.50, got.Total, 0.001) // 120.50 + 2*64
	assert.Equal(t, orderdom.StatusCompleted, got.Status)

	assert.Empty(t, f.carts.entries, "purchased entries leave the cart")
	assert.Len(t, f.orders.orders, 1)
}

func TestCheckoutSelectionSubset(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t, catalogdom.Item{ID: "a1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace}, 1)
	f.seedCart(t, catalogdom.Item{ID: "b2", Name: "Seren Twist Bangle", Price: 64, Category: catalogdom.CategoryBangle}, 1)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/checkout", `{"itemIds":["b2"]}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got orderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b2", got.Items[0].ItemID)

	_, stillThere := f.carts.entries["a1"]
	assert.True(t, stillThere, "unselected entries stay in the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/checkout", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutStaleSelection(t *testing.T) {
	f := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/checkout", `{"itemIds":["ghost"]}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, f.orders.orders, "no order is created for a stale selection")
}

func TestBuyNow(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t, catalogdom.Item{ID: "a1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace}, 1)
	f.seedCart(t, catalogdom.Item{ID: "b2", Name: "Seren Twist Bangle", Price: 64, Category: catalogdom.CategoryBangle}, 1)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/buy-now", `{"itemId":"a1"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got orderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "a1", got.Items[0].ItemID)

	_, stillThere := f.carts.entries["b2"]
	assert.True(t, stillThere)
}

func TestBuyNowValidation(t *testing.T) {
	f := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/buy-now", `{"itemId":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutPartialFailureConflict(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t, catalogdom.Item{ID: "a1", Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace}, 1)
	f.seedCart(t, catalogdom.Item{ID: "b2", Name: "Seren Twist Bangle", Price: 64, Category: catalogdom.CategoryBangle}, 1)
	f.carts.failDeletes = map[string]error{"b2": errors.New("store unavailable")}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, authedReq(http.MethodPost, "/store/me/checkout", ""))

	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error     string   `json:"error"`
		OrderID   string   `json:"orderId"`
		Undeleted []string `json:"undeleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order placed but cart cleanup incomplete", body.Error)
	assert.NotEmpty(t, body.OrderID)
	assert.Equal(t, []string{"b2"}, body.Undeleted)

	assert.Len(t, f.orders.orders, 1, "the order itself was placed")
}

func TestCheckoutRequiresAuth(t *testing.T) {
	f := newCheckoutFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/store/me/checkout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
