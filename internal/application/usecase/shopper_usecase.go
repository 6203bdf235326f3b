// internal/application/usecase/shopper_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	shopperdom "bijoux/internal/domain/shopper"
)

var ErrShopperInvalidArgument = errors.New("shopper_usecase: invalid argument")

// AuthAccounts wraps the Firebase Auth admin surface the usecase needs.
// Best-effort collaborator: profile deletion proceeds even when the auth
// account removal fails (it can be retried from the console).
type AuthAccounts interface {
	DeleteUser(ctx context.Context, uid string) error
}

// ShopperUsecase manages shopper profiles (storefront ensure-on-sign-in and
// the admin user management screen).
type ShopperUsecase struct {
	repo     shopperdom.Repository
	accounts AuthAccounts // optional
	clock    Clock
}

func NewShopperUsecase(repo shopperdom.Repository, accounts AuthAccounts) *ShopperUsecase {
	return &ShopperUsecase{repo: repo, accounts: accounts, clock: systemClock{}}
}

// EnsureProfile creates the users/{uid} doc on first sign-in. Existing
// profiles are returned unchanged (email drift is left to the client flow).
func (uc *ShopperUsecase) EnsureProfile(ctx context.Context, uid, email, firstName, lastName string) (shopperdom.Shopper, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return shopperdom.Shopper{}, ErrShopperInvalidArgument
	}

	existing, err := uc.repo.GetByUID(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shopperdom.ErrNotFound) {
		return shopperdom.Shopper{}, err
	}

	s := shopperdom.Shopper{
		UID:       uid,
		Email:     strings.TrimSpace(email),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      shopperdom.RoleUser,
		CreatedAt: uc.clock.Now(),
	}
	if err := s.Validate(); err != nil {
		return shopperdom.Shopper{}, err
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return shopperdom.Shopper{}, err
	}
	return s, nil
}

func (uc *ShopperUsecase) Get(ctx context.Context, uid string) (shopperdom.Shopper, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return shopperdom.Shopper{}, ErrShopperInvalidArgument
	}
	return uc.repo.GetByUID(ctx, uid)
}

// List returns all shoppers for the admin user management screen.
func (uc *ShopperUsecase) List(ctx context.Context) ([]shopperdom.Shopper, error) {
	return uc.repo.List(ctx)
}

// Delete removes the profile doc and, best-effort, the Firebase Auth account.
func (uc *ShopperUsecase) Delete(ctx context.Context, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrShopperInvalidArgument
	}

	if err := uc.repo.Delete(ctx, uid); err != nil {
		return err
	}

	if uc.accounts != nil {
		if err := uc.accounts.DeleteUser(ctx, uid); err != nil {
			log.Printf("[shopper] WARN: auth account delete failed uid=%s: %v", uid, err)
		}
	}
	return nil
}
