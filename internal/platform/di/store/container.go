// internal/platform/di/store/container.go
package store

import (
	"context"
	"errors"
	"log"
	"net/http"

	storehttp "bijoux/internal/adapters/in/http/store"
	storeHandler "bijoux/internal/adapters/in/http/store/handler"
	"bijoux/internal/adapters/in/http/middleware"
	"bijoux/internal/adapters/out/db"
	fsadapter "bijoux/internal/adapters/out/firestore"
	"bijoux/internal/adapters/out/gcs"
	"bijoux/internal/adapters/out/mail"
	usecase "bijoux/internal/application/usecase"
	orderdom "bijoux/internal/domain/order"
	shared "bijoux/internal/platform/di/shared"
)

// Container wires the shopper-facing service.
type Container struct {
	infra *shared.Infra

	orders orderdom.Repository

	catalogUC  *usecase.CatalogUsecase
	cartUC     *usecase.CartUsecase
	wishlistUC *usecase.WishlistUsecase
	checkoutUC *usecase.CheckoutUsecase
	shopperUC  *usecase.ShopperUsecase
}

// NewContainer builds all repositories and usecases for the storefront.
func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil || infra.Firestore == nil {
		return nil, errors.New("di.store: infra or firestore is nil")
	}

	catalogRepo := fsadapter.NewCatalogRepositoryFS(infra.Firestore)
	cartRepo := fsadapter.NewCartRepositoryFS(infra.Firestore)
	wishRepo := fsadapter.NewWishlistRepositoryFS(infra.Firestore)
	orderRepo := fsadapter.NewOrderRepositoryFS(infra.Firestore)
	shopperRepo := fsadapter.NewShopperRepositoryFS(infra.Firestore)

	// Optional collaborators. Keep the interfaces nil unless the concrete
	// adapter exists, so the usecase nil checks stay meaningful.
	var images usecase.ImageStore
	if infra.GCS != nil && infra.ProductImageBucket != "" {
		images = gcs.NewProductImageRepositoryGCS(infra.GCS, infra.ProductImageBucket)
	}

	var archive usecase.OrderArchive
	if infra.ArchiveDB != nil {
		pg := db.NewOrderArchivePG(infra.ArchiveDB.Client)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("[di.store] WARN: archive schema init failed: %v (archive disabled)", err)
		} else {
			archive = pg
		}
	}

	var mailer usecase.OrderMailer
	if infra.SendGridAPIKey != "" && infra.SendGridFrom != "" {
		mailer = mail.NewOrderMailer(mail.NewSendGridClient(infra.SendGridAPIKey), infra.SendGridFrom)
	} else {
		log.Printf("[di.store] order confirmation mail disabled (SendGrid key/from missing)")
	}

	var accounts usecase.AuthAccounts
	if infra.FirebaseAuth != nil {
		accounts = infra.FirebaseAuth
	}

	return &Container{
		infra:      infra,
		orders:     orderRepo,
		catalogUC:  usecase.NewCatalogUsecase(catalogRepo, images),
		cartUC:     usecase.NewCartUsecase(cartRepo, catalogRepo),
		wishlistUC: usecase.NewWishlistUsecase(wishRepo, catalogRepo),
		checkoutUC: usecase.NewCheckoutUsecase(cartRepo, orderRepo, shopperRepo, archive, mailer),
		shopperUC:  usecase.NewShopperUsecase(shopperRepo, accounts),
	}, nil
}

// Register mounts all storefront routes onto mux.
func (c *Container) Register(mux *http.ServeMux) {
	authMW := &middleware.UserAuthMiddleware{FirebaseAuth: c.infra.FirebaseAuth}

	storehttp.Register(mux, storehttp.Deps{
		Catalog:  storeHandler.NewCatalogHandler(c.catalogUC),
		Cart:     storeHandler.NewCartHandler(c.cartUC),
		Wishlist: storeHandler.NewWishlistHandler(c.wishlistUC),
		Checkout: storeHandler.NewCheckoutHandler(c.checkoutUC),
		Order:    storeHandler.NewOrderHandler(c.checkoutUC, c.orders),
		Profile:  storeHandler.NewProfileHandler(c.shopperUC),
		Auth:     authMW.Handler,
	})
}

// Close releases container-owned resources. Clients are owned by Infra.
func (c *Container) Close() error { return nil }
