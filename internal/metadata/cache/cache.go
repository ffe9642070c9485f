// Package cache provides the storage backends the metadata loader uses to
// keep fetched catalog documents between refreshes.
package cache

import (
	"context"
	"time"
)

// Cache stores raw metadata documents keyed by source.
type Cache interface {
	// Get retrieves a cached document.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a document with a TTL. A zero TTL uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a cached document.
	Delete(ctx context.Context, key string) error
}

// Config holds common configuration for cache backends.
type Config struct {
	// DefaultTTL applies when Set is called with a zero TTL.
	DefaultTTL time.Duration
	// Prefix is prepended to all cache keys.
	Prefix string
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		DefaultTTL: 10 * time.Minute,
		Prefix:     "initforge:metadata:",
	}
}

// ErrMiss is returned when a key is not present in the cache.
type ErrMiss struct {
	Key string
}

func (e ErrMiss) Error() string {
	return "cache miss: " + e.Key
}

// IsMiss checks whether an error is a cache miss.
func IsMiss(err error) bool {
	_, ok := err.(ErrMiss)
	return ok
}
