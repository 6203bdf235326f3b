// internal/domain/storage/errors.go
package storage

import "errors"

// ErrUnavailable means the document store could not be reached. Adapters wrap
// transport-level failures with this sentinel; callers surface a generic
// failure notice and leave local state unchanged. Never retried automatically.
var ErrUnavailable = errors.New("storage: unavailable")
