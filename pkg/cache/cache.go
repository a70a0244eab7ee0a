// Package cache provides response caching for passage fetches.
//
// Scripture passages are immutable, so the cache is the primary line of
// defense against refetching the same reference: the CLI caches every
// successful passage response on disk and serves repeats locally.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.PassageKey("web", "John 3:16")
//
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return parse(data)
//	}
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// PassageKey generates a key for a fetched passage.
	PassageKey(translation, reference string) string
}

// DefaultKeyer hashes key components into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PassageKey generates a key for a fetched passage.
func (DefaultKeyer) PassageKey(translation, reference string) string {
	return hashKey("passage", translation, reference)
}
