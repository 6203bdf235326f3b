// internal/adapters/out/firestore/decode_fs.go
package firestore

import (
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storagedom "bijoux/internal/domain/storage"
)

// wrapTransport maps transport-level failures onto the shared
// storage.ErrUnavailable sentinel and leaves everything else untouched.
// NotFound is NOT handled here — each repository maps it to its own domain
// sentinel (or treats it as an idempotent no-op).
func wrapTransport(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", storagedom.ErrUnavailable, err)
	default:
		return err
	}
}

// ------------------------------------------------------------------
// Tolerant decoding helpers.
//
// Legacy documents written by the mobile client are loosely typed (numbers
// may arrive as int64 or float64, timestamps may be missing), so snapshot
// parsing goes through snap.Data() instead of DataTo on a rigid struct.
// ------------------------------------------------------------------

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	return time.Time{}, false
}
