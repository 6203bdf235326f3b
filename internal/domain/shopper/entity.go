// internal/domain/shopper/entity.go
package shopper

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("shopper: not found")
	ErrInvalidShopper = errors.New("shopper: invalid")
)

// Shopper is an authenticated storefront user.
//
// Storage (Firestore):
// - collection: users
// - docId: Firebase Auth uid
//
// The backend never creates credentials — sign-up happens in Firebase Auth on
// the client; the profile doc is written on first sign-in.
type Shopper struct {
	UID       string `json:"uid" firestore:"uid"`
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"firstName" firestore:"firstName"`
	LastName  string `json:"lastName" firestore:"lastName"`

	// Role is "user" or "admin". Admin routes require "admin".
	Role string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (s Shopper) Validate() error {
	if strings.TrimSpace(s.UID) == "" {
		return ErrInvalidShopper
	}
	if s.Role != RoleUser && s.Role != RoleAdmin {
		return ErrInvalidShopper
	}
	return nil
}

func (s Shopper) IsAdmin() bool { return s.Role == RoleAdmin }
