// internal/domain/shopper/repository_port.go
package shopper

import "context"

// Repository is the persistence port for shopper profiles.
type Repository interface {
	GetByUID(ctx context.Context, uid string) (Shopper, error)

	// List returns all shoppers (admin user management screen).
	List(ctx context.Context) ([]Shopper, error)

	// Upsert writes the profile under docId = s.UID.
	Upsert(ctx context.Context, s Shopper) error

	// Delete removes the profile doc. Idempotent.
	// NOTE: the Firebase Auth account itself is deleted via the Admin SDK by
	// the usecase, not here.
	Delete(ctx context.Context, uid string) error
}
