// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	cartdom "bijoux/internal/domain/cart"
	"bijoux/internal/domain/membership"
	orderdom "bijoux/internal/domain/order"
	shopperdom "bijoux/internal/domain/shopper"
)

var ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")

// PartialCheckoutFailure reports the non-atomic fallback path failing between
// order creation and cart cleanup: the order exists but some entries are still
// in the cart. It carries everything the caller needs to resume cleanup.
type PartialCheckoutFailure struct {
	OrderID   string
	Undeleted []string // cart entry ids (catalog ids) not yet removed
	Cause     error
}

func (e *PartialCheckoutFailure) Error() string {
	return fmt.Sprintf("checkout_usecase: order %s created but %d cart entries not removed: %v",
		e.OrderID, len(e.Undeleted), e.Cause)
}

func (e *PartialCheckoutFailure) Unwrap() error { return e.Cause }

// OrderArchive mirrors completed orders into the reporting store (Postgres).
// Best-effort: archive failures never fail a checkout.
type OrderArchive interface {
	Archive(ctx context.Context, o orderdom.Order) error
}

// OrderMailer sends the order confirmation. Best-effort as well.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error
}

// CheckoutUsecase moves selected cart entries into one immutable order.
//
// "Buy Now" on a single item and full-cart checkout share this one
// implementation — Buy Now is a singleton selection.
type CheckoutUsecase struct {
	carts    cartdom.Repository
	orders   orderdom.Repository
	shoppers shopperdom.Repository

	// optional collaborators (nil-safe)
	archive OrderArchive
	mailer  OrderMailer

	clock Clock
}

func NewCheckoutUsecase(
	carts cartdom.Repository,
	orders orderdom.Repository,
	shoppers shopperdom.Repository,
	archive OrderArchive,
	mailer OrderMailer,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:    carts,
		orders:   orders,
		shoppers: shoppers,
		archive:  archive,
		mailer:   mailer,
		clock:    systemClock{},
	}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(
	carts cartdom.Repository,
	orders orderdom.Repository,
	shoppers shopperdom.Repository,
	archive OrderArchive,
	mailer OrderMailer,
	clock Clock,
) *CheckoutUsecase {
	uc := NewCheckoutUsecase(carts, orders, shoppers, archive, mailer)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// Checkout converts the selected cart entries into one order and removes them
// from the cart.
//
// entryIDs empty → the whole cart is selected.
// An id with no matching cart entry → cartdom.ErrEntryNotFound (the view is
// stale; refresh and retry).
//
// When the order repository implements orderdom.AtomicPlacer (Firestore
// transaction), order creation and cart cleanup commit together. Otherwise the
// two-step sequence runs and an interruption surfaces *PartialCheckoutFailure
// instead of silently leaving the purchased items in the cart.
func (uc *CheckoutUsecase) Checkout(ctx context.Context, ownerID string, entryIDs []string) (orderdom.Order, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return orderdom.Order{}, ErrCheckoutInvalidArgument
	}

	snapshot, err := uc.carts.List(ctx, owner)
	if err != nil {
		return orderdom.Order{}, err
	}

	selected := snapshot
	if len(entryIDs) > 0 {
		selected = make([]cartdom.Entry, 0, len(entryIDs))
		for _, id := range entryIDs {
			e, ok := membership.Find(snapshot, id)
			if !ok {
				return orderdom.Order{}, cartdom.ErrEntryNotFound
			}
			selected = append(selected, e)
		}
	}

	o, err := orderdom.New(owner, selected, uc.clock.Now())
	if err != nil {
		return orderdom.Order{}, err
	}

	placed, err := uc.place(ctx, owner, o)
	if err != nil {
		return orderdom.Order{}, err
	}

	uc.afterPlace(ctx, placed)
	return placed, nil
}

// BuyNow purchases exactly one cart entry. Same transition as Checkout with a
// singleton selection.
func (uc *CheckoutUsecase) BuyNow(ctx context.Context, ownerID, itemID string) (orderdom.Order, error) {
	id := strings.TrimSpace(itemID)
	if id == "" {
		return orderdom.Order{}, ErrCheckoutInvalidArgument
	}
	return uc.Checkout(ctx, ownerID, []string{id})
}

func (uc *CheckoutUsecase) place(ctx context.Context, owner string, o orderdom.Order) (orderdom.Order, error) {
	if ap, ok := uc.orders.(orderdom.AtomicPlacer); ok {
		return ap.PlaceAndClear(ctx, o, o.EntryIDs())
	}

	// Fallback: create then delete one by one. Not atomic.
	placed, err := uc.orders.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}

	ids := placed.EntryIDs()
	for i, id := range ids {
		if err := uc.carts.Delete(ctx, owner, id); err != nil {
			return orderdom.Order{}, &PartialCheckoutFailure{
				OrderID:   placed.ID,
				Undeleted: ids[i:],
				Cause:     err,
			}
		}
	}
	return placed, nil
}

// afterPlace runs the best-effort follow-ups: reporting archive and
// confirmation mail. Failures are logged, never propagated — the order is
// already placed.
func (uc *CheckoutUsecase) afterPlace(ctx context.Context, o orderdom.Order) {
	if uc.archive != nil {
		if err := uc.archive.Archive(ctx, o); err != nil {
			log.Printf("[checkout] WARN: order archive failed orderId=%s: %v", o.ID, err)
		}
	}

	if uc.mailer == nil || uc.shoppers == nil {
		return
	}
	s, err := uc.shoppers.GetByUID(ctx, o.OwnerID)
	if err != nil || strings.TrimSpace(s.Email) == "" {
		log.Printf("[checkout] WARN: no mail address for owner=%s: %v", o.OwnerID, err)
		return
	}
	if err := uc.mailer.SendOrderConfirmation(ctx, s.Email, o); err != nil {
		log.Printf("[checkout] WARN: confirmation mail failed orderId=%s: %v", o.ID, err)
	}
}

// Orders returns the shopper's order history, newest first.
func (uc *CheckoutUsecase) Orders(ctx context.Context, ownerID string) ([]orderdom.Order, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return nil, ErrCheckoutInvalidArgument
	}
	return uc.orders.ListByOwner(ctx, owner)
}
