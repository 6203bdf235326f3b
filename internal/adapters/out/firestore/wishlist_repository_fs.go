// internal/adapters/out/firestore/wishlist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	wishdom "bijoux/internal/domain/wishlist"
)

// WishlistRepositoryFS implements wishlist.Repository.
//
// Collection design:
// - users/{uid}/wishlistItems ✅ owner-scoped
//   (the legacy client used one global wishlistItems collection; that missing
//   tenancy key is corrected here)
// - docId: catalog item id
type WishlistRepositoryFS struct {
	Client *firestore.Client
}

func NewWishlistRepositoryFS(client *firestore.Client) *WishlistRepositoryFS {
	return &WishlistRepositoryFS{Client: client}
}

var _ wishdom.Repository = (*WishlistRepositoryFS)(nil)

func wishCol(client *firestore.Client, ownerID string) *firestore.CollectionRef {
	return client.Collection(usersCollection).Doc(ownerID).Collection(wishSubcollection)
}

func (r *WishlistRepositoryFS) List(ctx context.Context, ownerID string) ([]wishdom.Entry, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("wishlist_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("wishlist_repository_fs: ownerID is empty")
	}

	it := wishCol(r.Client, owner).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []wishdom.Entry
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapTransport(err)
		}
		out = append(out, wishEntryFromSnapshot(snap))
	}
	return out, nil
}

func (r *WishlistRepositoryFS) Upsert(ctx context.Context, ownerID string, e wishdom.Entry) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(e.ItemID)
	if owner == "" || id == "" {
		return wishdom.ErrInvalidEntry
	}

	_, err := wishCol(r.Client, owner).Doc(id).Set(ctx, wishEntryDocFromDomain(e))
	return wrapTransport(err)
}

func (r *WishlistRepositoryFS) Delete(ctx context.Context, ownerID, itemID string) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id := strings.TrimSpace(itemID)
	if owner == "" || id == "" {
		return nil
	}

	_, err := wishCol(r.Client, owner).Doc(id).Delete(ctx)
	return wrapTransport(err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type wishEntryDoc struct {
	ID          string    `firestore:"id"`
	Name        string    `firestore:"name"`
	Price       float64   `firestore:"price"`
	ImageURI    string    `firestore:"imageUri"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func wishEntryDocFromDomain(e wishdom.Entry) wishEntryDoc {
	return wishEntryDoc{
		ID:          e.ItemID,
		Name:        e.Name,
		Price:       e.Price,
		ImageURI:    e.ImageURI,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func wishEntryFromSnapshot(snap *firestore.DocumentSnapshot) wishdom.Entry {
	raw := snap.Data()
	e := wishdom.Entry{ItemID: snap.Ref.ID}
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
	if t, ok := asTime(raw["createdAt"]); ok {
		e.CreatedAt = t
	}
	return e
}
