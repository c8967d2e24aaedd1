package providers

import (
	"context"
	"time"
)

// CacheProvider defines the interface for caching operations. The catalog
// decorator and response caching sit on top of it.
type CacheProvider interface {
	// Get retrieves a value from cache; a miss is returned as an error
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with the given time to live
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)
}
