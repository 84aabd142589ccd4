package store

import (
	"context"
	"errors"
)

// Well-known state keys. Every session namespace carries at most one value
// per key, serialized as JSON.
const (
	KeyUser      = "user"
	KeyCart      = "cart"
	KeyWishlist  = "wishlist"
	KeyFilters   = "filters"
	KeyAddresses = "addresses"
)

var (
	// ErrNotFound means no value is stored under the key.
	ErrNotFound = errors.New("store: key not found")
	// ErrMalformed means a value exists but does not decode into the
	// requested shape. Callers decide whether to erase and reinitialize.
	ErrMalformed = errors.New("store: malformed value")
)

//go:generate mockgen -source=store.go -destination=../mock/store/store_mock.go -package=mock

// Store persists named slices of session state to durable key-value storage.
// Values are JSON-serialized; writes are unconditional and immediate.
type Store interface {
	// Load decodes the value under (namespace, key) into dest.
	// Returns ErrNotFound when absent and ErrMalformed when the stored
	// bytes do not decode into dest's shape.
	Load(ctx context.Context, namespace, key string, dest any) error

	// Save serializes value and writes it unconditionally.
	Save(ctx context.Context, namespace, key string, value any) error

	// Erase removes the value under (namespace, key). Absent keys are not
	// an error.
	Erase(ctx context.Context, namespace, key string) error

	// Subscribe registers fn to be called with the key name whenever
	// another writer changes a value inside the namespace. Writes made
	// through this Store instance do not trigger its own subscribers.
	// The returned func cancels the subscription. Backends without a
	// change signal return a no-op cancel and never call fn.
	Subscribe(ctx context.Context, namespace string, fn func(key string)) (cancel func(), err error)
}
