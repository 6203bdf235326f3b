// internal/adapters/out/firestore/order_repository_fs.go
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

	orderdom "bijoux/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository and order.AtomicPlacer.
//
// Collection design:
// - users/{uid}/orders
// - docId: store-generated
// Orders are write-once; no update or delete path exists.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

var (
	_ orderdom.Repository   = (*OrderRepositoryFS)(nil)
	_ orderdom.AtomicPlacer = (*OrderRepositoryFS)(nil)
)

func orderCol(client *firestore.Client, ownerID string) *firestore.CollectionRef {
	return client.Collection(usersCollection).Doc(ownerID).Collection(ordersSubcollection)
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(o.OwnerID)
	if owner == "" {
		return orderdom.Order{}, errors.New("order_repository_fs: ownerID is empty")
	}

	ref := orderCol(r.Client, owner).NewDoc()
	o.ID = ref.ID

	if _, err := ref.Create(ctx, orderDocFromDomain(o)); err != nil {
		return orderdom.Order{}, wrapTransport(err)
	}
	return o, nil
}

// PlaceAndClear creates the order doc and deletes the consumed cart entry docs
// in one Firestore transaction. Either everything commits or nothing does, so
// the "order exists but items are still in the cart" window cannot occur.
func (r *OrderRepositoryFS) PlaceAndClear(ctx context.Context, o orderdom.Order, cartEntryIDs []string) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(o.OwnerID)
	if owner == "" {
		return orderdom.Order{}, errors.New("order_repository_fs: ownerID is empty")
	}

	ref := orderCol(r.Client, owner).NewDoc()
	o.ID = ref.ID
	doc := orderDocFromDomain(o)

	err := r.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(ref, doc); err != nil {
			return err
		}
		for _, id := range cartEntryIDs {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			// delete of an already-absent doc is a no-op inside the tx as well
			if err := tx.Delete(cartCol(r.Client, owner).Doc(id)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return orderdom.Order{}, wrapTransport(err)
	}
	return o, nil
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, ownerID, id string) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if owner == "" || id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	snap, err := orderCol(r.Client, owner).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, wrapTransport(err)
	}
	return orderFromSnapshot(owner, snap), nil
}

func (r *OrderRepositoryFS) ListByOwner(ctx context.Context, ownerID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, errors.New("order_repository_fs: ownerID is empty")
	}

	it := orderCol(r.Client, owner).OrderBy("date", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapTransport(err)
		}
		out = append(out, orderFromSnapshot(owner, snap))
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderItemDoc struct {
	ID       string  `firestore:"id"`
	Name     string  `firestore:"name"`
	Price    float64 `firestore:"price"`
	ImageURI string  `firestore:"imageUri"`
	Quantity int     `firestore:"quantity"`
}

type orderDoc struct {
	OwnerID string         `firestore:"ownerId"`
	Items   []orderItemDoc `firestore:"items"`
	Total   float64        `firestore:"total"`
	Status  string         `firestore:"status"`
	Date    time.Time      `firestore:"date"`
}

func orderDocFromDomain(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			ID:       it.ItemID,
			Name:     it.Name,
			Price:    it.Price,
			ImageURI: it.ImageURI,
			Quantity: it.Quantity,
		})
	}
	return orderDoc{
		OwnerID: o.OwnerID,
		Items:   items,
		Total:   o.Total,
		Status:  o.Status,
		Date:    o.Date,
	}
}

func orderFromSnapshot(owner string, snap *firestore.DocumentSnapshot) orderdom.Order {
	o := orderdom.Order{ID: snap.Ref.ID, OwnerID: owner}
	raw := snap.Data()
	if raw == nil {
		return o
	}

	o.Total = asFloat(raw["total"])
	o.Status = asString(raw["status"])
	if t, ok := asTime(raw["date"]); ok {
		o.Date = t
	}

	items, _ := raw["items"].([]any)
	for _, v := range items {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		qty := asInt(m["quantity"])
		if qty < 1 {
			qty = 1 // legacy purchase docs may miss quantity
		}
		o.Items = append(o.Items, orderdom.ItemSnapshot{
			ItemID:   asString(m["id"]),
			Name:     asString(m["name"]),
			Price:    asFloat(m["price"]),
			ImageURI: asString(m["imageUri"]),
			Quantity: qty,
		})
	}
	return o
}
