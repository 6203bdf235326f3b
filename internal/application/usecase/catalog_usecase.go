// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	catalogdom "bijoux/internal/domain/catalog"
)

var ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")

// ImageStore uploads product images and returns a public URL (GCS adapter).
type ImageStore interface {
	Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error)
}

// CatalogUsecase serves storefront reads and admin writes of the jewelry
// catalog. The storefront never mutates the catalog.
type CatalogUsecase struct {
	repo   catalogdom.Repository
	images ImageStore // optional; nil disables image upload
}

func NewCatalogUsecase(repo catalogdom.Repository, images ImageStore) *CatalogUsecase {
	return &CatalogUsecase{repo: repo, images: images}
}

// Browse lists items, filtered by category ("", "all" → everything).
func (uc *CatalogUsecase) Browse(ctx context.Context, category string) ([]catalogdom.Item, error) {
	cat, err := catalogdom.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, cat)
}

func (uc *CatalogUsecase) Get(ctx context.Context, id string) (catalogdom.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalogdom.Item{}, ErrCatalogInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// ========================
// Admin commands
// ========================

func (uc *CatalogUsecase) Create(ctx context.Context, it catalogdom.Item) (catalogdom.Item, error) {
	if err := it.Validate(); err != nil {
		return catalogdom.Item{}, err
	}
	return uc.repo.Create(ctx, it)
}

func (uc *CatalogUsecase) Update(ctx context.Context, it catalogdom.Item) error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrCatalogInvalidArgument
	}
	if err := it.Validate(); err != nil {
		return err
	}
	return uc.repo.Update(ctx, it)
}

// Delete removes a catalog item. Idempotent. Existing cart/wishlist entries
// keep their denormalized snapshot; they are not cascaded.
func (uc *CatalogUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCatalogInvalidArgument
	}
	return uc.repo.Delete(ctx, id)
}

// UploadImage stores a product image and returns the imageUri to put on the
// item. Requires the GCS image store to be configured.
func (uc *CatalogUsecase) UploadImage(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	if uc.images == nil {
		return "", errors.New("catalog_usecase: image store is not configured")
	}
	if strings.TrimSpace(fileName) == "" || body == nil {
		return "", ErrCatalogInvalidArgument
	}
	return uc.images.Upload(ctx, fileName, contentType, body)
}
