// internal/domain/membership/membership.go
package membership

import "strings"

// Keyed is implemented by cart and wishlist entries.
// CatalogKey returns the denormalized catalog item id, NOT the Firestore docId.
type Keyed interface {
	CatalogKey() string
}

// Exists reports whether candidateID is already represented in snapshot.
//
// This is intentionally a linear scan over the fetched collection snapshot:
// the catalog id is a denormalized field, so there is no docId lookup to lean on
// when the collection was written with store-generated ids (legacy data).
func Exists[E Keyed](snapshot []E, candidateID string) bool {
	id := strings.TrimSpace(candidateID)
	if id == "" {
		return false
	}
	for _, e := range snapshot {
		if e.CatalogKey() == id {
			return true
		}
	}
	return false
}

// Find returns the first entry whose catalog id equals candidateID.
// ok is false when the snapshot holds no such entry.
func Find[E Keyed](snapshot []E, candidateID string) (entry E, ok bool) {
	id := strings.TrimSpace(candidateID)
	if id == "" {
		return entry, false
	}
	for _, e := range snapshot {
		if e.CatalogKey() == id {
			return e, true
		}
	}
	return entry, false
}
