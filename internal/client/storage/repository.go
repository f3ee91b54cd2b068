// Package storage is the durable source of truth for all client state:
// session token and profile, the favourites list, the theme preference, and
// the locally-registered account roster. Everything lives in a single SQLite
// key-value table so in-memory caches always have one place to reconcile with.
package storage

import "context"

// Repository is a string-keyed key-value store.
type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
