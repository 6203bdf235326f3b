// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	cartdom "bijoux/internal/domain/cart"
	catalogdom "bijoux/internal/domain/catalog"
	orderdom "bijoux/internal/domain/order"
	shopperdom "bijoux/internal/domain/shopper"
	wishdom "bijoux/internal/domain/wishlist"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// ----------------------------
// catalog fake
// ----------------------------

type fakeCatalogRepo struct {
	items map[string]catalogdom.Item
}

func newFakeCatalogRepo(items ...catalogdom.Item) *fakeCatalogRepo {
	m := map[string]catalogdom.Item{}
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakeCatalogRepo{items: m}
}

func (r *fakeCatalogRepo) GetByID(_ context.Context, id string) (catalogdom.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return catalogdom.Item{}, catalogdom.ErrNotFound
	}
	return it, nil
}

func (r *fakeCatalogRepo) List(_ context.Context, cat catalogdom.Category) ([]catalogdom.Item, error) {
	var out []catalogdom.Item
	for _, it := range r.items {
		if cat == catalogdom.CategoryAll || it.Category == cat {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCatalogRepo) Create(_ context.Context, it catalogdom.Item) (catalogdom.Item, error) {
	if it.ID == "" {
		it.ID = fmt.Sprintf("item-%d", len(r.items)+1)
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeCatalogRepo) Update(_ context.Context, it catalogdom.Item) error {
	if _, ok := r.items[it.ID]; !ok {
		return catalogdom.ErrNotFound
	}
	r.items[it.ID] = it
	return nil
}

func (r *fakeCatalogRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// ----------------------------
// cart fake
// ----------------------------

// fakeCartRepo mimics the Firestore adapter: docId = catalog id, so Upsert of
// the same item overwrites. listStale simulates a snapshot read that happened
// before a concurrent write (check-then-act race).
type fakeCartRepo struct {
	entries map[string]cartdom.Entry // itemID -> entry

	listStale   bool // when true, List reports an empty cart regardless of state
	failDeletes map[string]error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{entries: map[string]cartdom.Entry{}}
}

func (r *fakeCartRepo) List(_ context.Context, _ string) ([]cartdom.Entry, error) {
	if r.listStale {
		return nil, nil
	}
	out := make([]cartdom.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, _ string, e cartdom.Entry) error {
	r.entries[e.ItemID] = e
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(_ context.Context, _, itemID string, qty int) error {
	e, ok := r.entries[itemID]
	if !ok {
		return cartdom.ErrEntryNotFound
	}
	e.Quantity = qty
	r.entries[itemID] = e
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, _, itemID string) error {
	if err, ok := r.failDeletes[itemID]; ok {
		return err
	}
	delete(r.entries, itemID) // absent -> no-op (idempotent)
	return nil
}

// ----------------------------
// wishlist fake
// ----------------------------

type fakeWishlistRepo struct {
	entries map[string]wishdom.Entry
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: map[string]wishdom.Entry{}}
}

func (r *fakeWishlistRepo) List(_ context.Context, _ string) ([]wishdom.Entry, error) {
	out := make([]wishdom.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *fakeWishlistRepo) Upsert(_ context.Context, _ string, e wishdom.Entry) error {
	r.entries[e.ItemID] = e
	return nil
}

func (r *fakeWishlistRepo) Delete(_ context.Context, _, itemID string) error {
	delete(r.entries, itemID)
	return nil
}

// ----------------------------
// order fakes
// ----------------------------

type fakeOrderRepo struct {
	orders []orderdom.Order
	nextID int
}

func (r *fakeOrderRepo) Create(_ context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.nextID++
	o.ID = fmt.Sprintf("order-%d", r.nextID)
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, _, id string) (orderdom.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return orderdom.Order{}, orderdom.ErrNotFound
}

func (r *fakeOrderRepo) ListByOwner(_ context.Context, ownerID string) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for _, o := range r.orders {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// atomicOrderRepo additionally implements orderdom.AtomicPlacer, deleting cart
// entries in the same "commit" the way the Firestore transaction adapter does.
type atomicOrderRepo struct {
	fakeOrderRepo
	carts  *fakeCartRepo
	placed int
}

func (r *atomicOrderRepo) PlaceAndClear(ctx context.Context, o orderdom.Order, entryIDs []string) (orderdom.Order, error) {
	placed, err := r.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}
	for _, id := range entryIDs {
		delete(r.carts.entries, id)
	}
	r.placed++
	return placed, nil
}

// ----------------------------
// shopper / archive / mailer fakes
// ----------------------------

type fakeShopperRepo struct {
	shoppers map[string]shopperdom.Shopper
}

func newFakeShopperRepo(list ...shopperdom.Shopper) *fakeShopperRepo {
	m := map[string]shopperdom.Shopper{}
	for _, s := range list {
		m[s.UID] = s
	}
	return &fakeShopperRepo{shoppers: m}
}

func (r *fakeShopperRepo) GetByUID(_ context.Context, uid string) (shopperdom.Shopper, error) {
	s, ok := r.shoppers[uid]
	if !ok {
		return shopperdom.Shopper{}, shopperdom.ErrNotFound
	}
	return s, nil
}

func (r *fakeShopperRepo) List(_ context.Context) ([]shopperdom.Shopper, error) {
	out := make([]shopperdom.Shopper, 0, len(r.shoppers))
	for _, s := range r.shoppers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (r *fakeShopperRepo) Upsert(_ context.Context, s shopperdom.Shopper) error {
	r.shoppers[s.UID] = s
	return nil
}

func (r *fakeShopperRepo) Delete(_ context.Context, uid string) error {
	delete(r.shoppers, uid)
	return nil
}

type fakeArchive struct {
	archived []orderdom.Order
	err      error
}

func (a *fakeArchive) Archive(_ context.Context, o orderdom.Order) error {
	if a.err != nil {
		return a.err
	}
	a.archived = append(a.archived, o)
	return nil
}

type fakeMailer struct {
	sentTo []string
	err    error
}

func (m *fakeMailer) SendOrderConfirmation(_ context.Context, to string, _ orderdom.Order) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, to)
	return nil
}
