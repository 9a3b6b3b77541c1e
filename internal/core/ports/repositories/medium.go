package repositories

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a medium whose capacity a write would exceed.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KeyValueMedium is the durable local storage every repository persists to.
// Each key holds one serialized document.
type KeyValueMedium interface {
	// Get returns the document stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous document.
	// Implementations must leave the previous document intact on failure.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes every given key as one operation: either all of them are
	// removed or, on failure, none are. Absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
