// internal/platform/di/admin/container.go
package admin

import (
	"context"
	"errors"
	"log"
	"net/http"

	adminhttp "bijoux/internal/adapters/in/http/admin"
	adminHandler "bijoux/internal/adapters/in/http/admin/handler"
	"bijoux/internal/adapters/in/http/middleware"
	"bijoux/internal/adapters/out/db"
	fsadapter "bijoux/internal/adapters/out/firestore"
	"bijoux/internal/adapters/out/gcs"
	adminquery "bijoux/internal/application/query/admin"
	usecase "bijoux/internal/application/usecase"
	shopperdom "bijoux/internal/domain/shopper"
	shared "bijoux/internal/platform/di/shared"
)

// Container wires the back-office service.
type Container struct {
	infra *shared.Infra

	shoppers shopperdom.Repository

	catalogUC *usecase.CatalogUsecase
	shopperUC *usecase.ShopperUsecase

	cartOverview     *adminquery.CartOverviewQuery
	purchaseOverview *adminquery.PurchaseOverviewQuery
	report           *db.OrderArchivePG // nil when the archive DB is absent
}

// NewContainer builds repositories, usecases and queries for the back office.
func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil || infra.Firestore == nil {
		return nil, errors.New("di.admin: infra or firestore is nil")
	}

	catalogRepo := fsadapter.NewCatalogRepositoryFS(infra.Firestore)
	cartRepo := fsadapter.NewCartRepositoryFS(infra.Firestore)
	orderRepo := fsadapter.NewOrderRepositoryFS(infra.Firestore)
	shopperRepo := fsadapter.NewShopperRepositoryFS(infra.Firestore)

	var images usecase.ImageStore
	if infra.GCS != nil && infra.ProductImageBucket != "" {
		images = gcs.NewProductImageRepositoryGCS(infra.GCS, infra.ProductImageBucket)
	} else {
		log.Printf("[di.admin] image upload disabled (GCS client or bucket missing)")
	}

	var accounts usecase.AuthAccounts
	if infra.FirebaseAuth != nil {
		accounts = infra.FirebaseAuth
	}

	var report *db.OrderArchivePG
	if infra.ArchiveDB != nil {
		report = db.NewOrderArchivePG(infra.ArchiveDB.Client)
		if err := report.EnsureSchema(ctx); err != nil {
			log.Printf("[di.admin] WARN: archive schema init failed: %v (reports disabled)", err)
			report = nil
		}
	}

	return &Container{
		infra:            infra,
		shoppers:         shopperRepo,
		catalogUC:        usecase.NewCatalogUsecase(catalogRepo, images),
		shopperUC:        usecase.NewShopperUsecase(shopperRepo, accounts),
		cartOverview:     adminquery.NewCartOverviewQuery(shopperRepo, cartRepo),
		purchaseOverview: adminquery.NewPurchaseOverviewQuery(shopperRepo, orderRepo),
		report:           report,
	}, nil
}

// Register mounts all back-office routes onto mux.
func (c *Container) Register(mux *http.ServeMux) {
	userMW := &middleware.UserAuthMiddleware{FirebaseAuth: c.infra.FirebaseAuth}
	adminMW := &middleware.AdminAuthMiddleware{Shoppers: c.shoppers}
	auth := func(h http.Handler) http.Handler {
		return userMW.Handler(adminMW.Handler(h))
	}

	// keep the interface nil unless the archive exists (typed-nil trap)
	var completed adminHandler.CompletedOrdersReport
	if c.report != nil {
		completed = c.report
	}

	adminhttp.Register(mux, adminhttp.Deps{
		Catalog:  adminHandler.NewCatalogAdminHandler(c.catalogUC),
		User:     adminHandler.NewUserAdminHandler(c.shopperUC),
		Overview: adminHandler.NewOverviewHandler(c.cartOverview, c.purchaseOverview),
		Report:   adminHandler.NewReportHandler(completed),
		Auth:     auth,
	})
}

// Close releases container-owned resources. Clients are owned by Infra.
func (c *Container) Close() error { return nil }
