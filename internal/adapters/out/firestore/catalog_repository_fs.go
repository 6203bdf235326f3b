// internal/adapters/out/firestore/catalog_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogdom "bijoux/internal/domain/catalog"
)

const catalogCollection = "jewelryItems"

// CatalogRepositoryFS implements catalog.Repository on the global
// jewelryItems collection.
type CatalogRepositoryFS struct {
	Client *firestore.Client
}

func NewCatalogRepositoryFS(client *firestore.Client) *CatalogRepositoryFS {
	return &CatalogRepositoryFS{Client: client}
}

var _ catalogdom.Repository = (*CatalogRepositoryFS)(nil)

func (r *CatalogRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(catalogCollection)
}

func (r *CatalogRepositoryFS) GetByID(ctx context.Context, id string) (catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return catalogdom.Item{}, errors.New("catalog_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return catalogdom.Item{}, catalogdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return catalogdom.Item{}, catalogdom.ErrNotFound
		}
		return catalogdom.Item{}, wrapTransport(err)
	}
	return itemFromSnapshot(snap), nil
}

func (r *CatalogRepositoryFS) List(ctx context.Context, category catalogdom.Category) ([]catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("catalog_repository_fs: firestore client is nil")
	}

	q := r.col().Query
	if category != "" && category != catalogdom.CategoryAll {
		q = q.Where("category", "==", string(category))
	}

	it := q.Documents(ctx)
	defer it.Stop()

	var out []catalogdom.Item
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapTransport(err)
		}
		out = append(out, itemFromSnapshot(snap))
	}
	return out, nil
}

func (r *CatalogRepositoryFS) Create(ctx context.Context, item catalogdom.Item) (catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return catalogdom.Item{}, errors.New("catalog_repository_fs: firestore client is nil")
	}

	ref := r.col().NewDoc()
	if id := strings.TrimSpace(item.ID); id != "" {
		ref = r.col().Doc(id)
	}
	item.ID = ref.ID

	if _, err := ref.Set(ctx, itemDocFromDomain(item)); err != nil {
		return catalogdom.Item{}, wrapTransport(err)
	}
	return item, nil
}

func (r *CatalogRepositoryFS) Update(ctx context.Context, item catalogdom.Item) error {
	if r == nil || r.Client == nil {
		return errors.New("catalog_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(item.ID)
	if id == "" {
		return catalogdom.ErrNotFound
	}
	item.ID = id

	// Set with a must-exist precondition is not available on Set; check first.
	// (Admin-only path, so the extra read is acceptable.)
	if _, err := r.col().Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return catalogdom.ErrNotFound
		}
		return wrapTransport(err)
	}

	_, err := r.col().Doc(id).Set(ctx, itemDocFromDomain(item))
	return wrapTransport(err)
}

func (r *CatalogRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("catalog_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	_, err := r.col().Doc(id).Delete(ctx)
	return wrapTransport(err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type itemDoc struct {
	ID          string  `firestore:"id"`
	Name        string  `firestore:"name"`
	Price       float64 `firestore:"price"`
	ImageURI    string  `firestore:"imageUri"`
	Description string  `firestore:"description"`
	Category    string  `firestore:"category"`
	Details     string  `firestore:"details,omitempty"`
}

func itemDocFromDomain(it catalogdom.Item) itemDoc {
	return itemDoc{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		ImageURI:    it.ImageURI,
		Description: it.Description,
		Category:    string(it.Category),
		Details:     it.Details,
	}
}

func itemFromSnapshot(snap *firestore.DocumentSnapshot) catalogdom.Item {
	raw := snap.Data()
	if raw == nil {
		return catalogdom.Item{ID: snap.Ref.ID}
	}
	return catalogdom.Item{
		// docId is the source of truth even when the id field is absent
		ID:          snap.Ref.ID,
		Name:        asString(raw["name"]),
		Price:       asFloat(raw["price"]),
		ImageURI:    asString(raw["imageUri"]),
		Description: asString(raw["description"]),
		Category:    catalogdom.Category(asString(raw["category"])),
		Details:     asString(raw["details"]),
	}
}
