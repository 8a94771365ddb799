// Package settings is a durable key-value store backed by the local client
// database. It holds the small pieces of state that must survive restarts,
// most importantly the credential token.
package settings

import "context"

type Repository interface {
	// Get returns the stored value, or "" with a nil error when the key is
	// absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
