// internal/adapters/out/gcs/productImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// ProductImageRepositoryGCS is the GCS adapter for catalog product images.
//
// Layout (single bucket):
// - bucket: <store>-product-images
// - objectPath: products/{yyyyMMdd}/<fileName>
//
// Public access:
//   - The bucket carries IAM "allUsers: Storage Object Viewer" (uniform
//     access), so uploaded objects are publicly readable without per-object
//     ACL changes. PublicURL therefore needs no signing.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

func (r *ProductImageRepositoryGCS) bucketHandle() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("productImage_repository_gcs: storage client is nil")
	}
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return nil, errors.New("productImage_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(b), nil
}

// Upload streams the image to GCS and returns its public URL.
// The object path is prefixed with the upload date so the console stays
// navigable as the catalog grows.
func (r *ProductImageRepositoryGCS) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	bh, err := r.bucketHandle()
	if err != nil {
		return "", err
	}

	name := sanitizeFileName(fileName)
	if name == "" {
		return "", errors.New("productImage_repository_gcs: fileName is empty")
	}

	objPath := fmt.Sprintf("products/%s/%s", time.Now().UTC().Format("20060102"), name)

	w := bh.Object(objPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return r.PublicURL(objPath), nil
}

// Delete removes an object; absent objects are treated as already deleted.
func (r *ProductImageRepositoryGCS) Delete(ctx context.Context, objectPath string) error {
	bh, err := r.bucketHandle()
	if err != nil {
		return err
	}
	obj := strings.TrimSpace(objectPath)
	if obj == "" {
		return nil
	}
	if err := bh.Object(obj).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

// ListObjectPaths lists object paths under the given prefix, for cleanup jobs.
func (r *ProductImageRepositoryGCS) ListObjectPaths(ctx context.Context, prefix string) ([]string, error) {
	bh, err := r.bucketHandle()
	if err != nil {
		return nil, err
	}

	it := bh.Objects(ctx, &storage.Query{Prefix: strings.TrimSpace(prefix)})

	var out []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if attrs == nil || strings.TrimSpace(attrs.Name) == "" {
			continue
		}
		out = append(out, attrs.Name)
	}
	return out, nil
}

// PublicURL returns the public URL for the object.
func (r *ProductImageRepositoryGCS) PublicURL(objectPath string) string {
	base := strings.TrimSpace(r.PublicBaseURL)
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Encode path but keep "/" separators.
	parts := strings.Split(objectPath, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	encoded := strings.Join(parts, "/")
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), strings.TrimSpace(r.Bucket), encoded)
}

// sanitizeFileName strips directories and characters GCS consoles choke on.
func sanitizeFileName(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
