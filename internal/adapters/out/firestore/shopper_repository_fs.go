// internal/adapters/out/firestore/shopper_repository_fs.go
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

	shopperdom "bijoux/internal/domain/shopper"
)

// ShopperRepositoryFS implements shopper.Repository on the users collection.
// docId: Firebase Auth uid.
type ShopperRepositoryFS struct {
	Client *firestore.Client
}

func NewShopperRepositoryFS(client *firestore.Client) *ShopperRepositoryFS {
	return &ShopperRepositoryFS{Client: client}
}

var _ shopperdom.Repository = (*ShopperRepositoryFS)(nil)

func (r *ShopperRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(usersCollection)
}

func (r *ShopperRepositoryFS) GetByUID(ctx context.Context, uid string) (shopperdom.Shopper, error) {
	if r == nil || r.Client == nil {
		return shopperdom.Shopper{}, errors.New("shopper_repository_fs: firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return shopperdom.Shopper{}, shopperdom.ErrNotFound
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return shopperdom.Shopper{}, shopperdom.ErrNotFound
		}
		return shopperdom.Shopper{}, wrapTransport(err)
	}
	return shopperFromSnapshot(snap), nil
}

func (r *ShopperRepositoryFS) List(ctx context.Context) ([]shopperdom.Shopper, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("shopper_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []shopperdom.Shopper
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapTransport(err)
		}
		out = append(out, shopperFromSnapshot(snap))
	}
	return out, nil
}

func (r *ShopperRepositoryFS) Upsert(ctx context.Context, s shopperdom.Shopper) error {
	if r == nil || r.Client == nil {
		return errors.New("shopper_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(s.UID)
	if uid == "" {
		return shopperdom.ErrInvalidShopper
	}

	_, err := r.col().Doc(uid).Set(ctx, shopperDocFromDomain(s))
	return wrapTransport(err)
}

func (r *ShopperRepositoryFS) Delete(ctx context.Context, uid string) error {
	if r == nil || r.Client == nil {
		return errors.New("shopper_repository_fs: firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil
	}

	// NOTE: subcollections (cartItems / wishlistItems / orders) are not
	// cascaded by a doc delete; orphaned subtrees are swept by an offline job.
	_, err := r.col().Doc(uid).Delete(ctx)
	return wrapTransport(err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type shopperDoc struct {
	UID       string    `firestore:"uid"`
	Email     string    `firestore:"email"`
	FirstName string    `firestore:"firstName"`
	LastName  string    `firestore:"lastName"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func shopperDocFromDomain(s shopperdom.Shopper) shopperDoc {
	return shopperDoc{
		UID:       s.UID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}

func shopperFromSnapshot(snap *firestore.DocumentSnapshot) shopperdom.Shopper {
	s := shopperdom.Shopper{UID: snap.Ref.ID, Role: shopperdom.RoleUser}
	raw := snap.Data()
	if raw == nil {
		return s
	}

	s.Email = asString(raw["email"])
	s.FirstName = asString(raw["firstName"])
	s.LastName = asString(raw["lastName"])
	if role := strings.TrimSpace(asString(raw["role"])); role != "" {
		s.Role = role
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		s.CreatedAt = t
	}
	return s
}
