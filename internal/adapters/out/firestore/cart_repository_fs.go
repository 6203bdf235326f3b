// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "bijoux/internal/domain/cart"
)

const (
	usersCollection     = "users"
	cartSubcollection   = "cartItems"
	ordersSubcollection = "orders"
	wishSubcollection   = "wishlistItems"
)

// CartRepositoryFS implements cart.Repository.
//
// Collection design:
// - users/{uid}/cartItems
// - docId: catalog item id ✅ (deterministic key — two racy adds of the same
//   item overwrite each other instead of creating a second doc)
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

var _ cartdom.Repository = (*CartRepositoryFS)(nil)

func cartCol(client *firestore.Client, ownerID string) *firestore.CollectionRef {
	return client.Collection(usersCollection).Doc(ownerID).Collection(cartSubcollection)
}

func (r *CartRepositoryFS) List(ctx context.Context, ownerID string) ([]cartdom.Entry, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("cart_repository_fs: ownerID is empty")
	}

	// insertion order for display; not semantically significant
	it := cartCol(r.Client, owner).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []cartdom.Entry
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapTransport(err)
		}
		out = append(out, cartEntryFromSnapshot(snap))
	}
	return out, nil
}

func (r *CartRepositoryFS) Upsert(ctx context.Context, ownerID string, e cartdom.Entry) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(e.ItemID)
	if owner == "" || id == "" {
		return cartdom.ErrInvalidEntry
	}
	if err := e.Validate(); err != nil {
		return err
	}

	// Overwrite full doc (simple & predictable).
	_, err := cartCol(r.Client, owner).Doc(id).Set(ctx, cartEntryDocFromDomain(e))
	return wrapTransport(err)
}

// UpdateQuantity patches only the quantity field; a vanished doc surfaces
// cart.ErrEntryNotFound so the caller can refresh its view.
func (r *CartRepositoryFS) UpdateQuantity(ctx context.Context, ownerID, itemID string, qty int) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return cartdom.ErrInvalidEntry
	}
	if qty < 1 {
		return cartdom.ErrInvalidEntry
	}

	_, err := cartCol(r.Client, owner).Doc(id).Update(ctx, []firestore.Update{
		{Path: "quantity", Value: qty},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.ErrEntryNotFound
		}
		return wrapTransport(err)
	}
	return nil
}

// Delete removes the entry. Firestore deletes are idempotent — deleting an
// absent doc succeeds, which is exactly the contract.
func (r *CartRepositoryFS) Delete(ctx context.Context, ownerID, itemID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return nil
	}

	_, err := cartCol(r.Client, owner).Doc(id).Delete(ctx)
	return wrapTransport(err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartEntryDoc struct {
	ID          string    `firestore:"id"`
	Name        string    `firestore:"name"`
	Price       float64   `firestore:"price"`
	ImageURI    string    `firestore:"imageUri"`
	Description string    `firestore:"description"`
	Quantity    int       `firestore:"quantity"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func cartEntryDocFromDomain(e cartdom.Entry) cartEntryDoc {
	return cartEntryDoc{
		ID:          e.ItemID,
		Name:        e.Name,
		Price:       e.Price,
		ImageURI:    e.ImageURI,
		Description: e.Description,
		Quantity:    e.Quantity,
		CreatedAt:   e.CreatedAt,
	}
}

// cartEntryFromSnapshot parses tolerantly: legacy docs written by the mobile
// client may miss quantity (treated as 1) or carry numbers as int64.
func cartEntryFromSnapshot(snap *firestore.DocumentSnapshot) cartdom.Entry {
	raw := snap.Data()
	e := cartdom.Entry{ItemID: snap.Ref.ID, Quantity: 1}
	if raw == nil {
		return e
	}

	if id := strings.TrimSpace(asString(raw["id"])); id != "" {
		e.ItemID = id
	}
	e.Name = asString(raw["name"])
	e.Price = asFloat(raw["price"])
	e.ImageURI = asString(raw["imageUri"])
	e.Description = asString(raw["description"])
	if q := asInt(raw["quantity"]); q >= 1 {
		e.Quantity = q
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		e.CreatedAt = t
	}
	return e
}
