// Package cache provides the key-value cache used for read-through caching
// of catalog lookups. Values are stored as strings so the cache stays
// decoupled from serialization concerns; callers marshal what they store.
package cache

import (
	"context"
	"time"
)

// ErrMiss signals a cache miss in a typed way, letting callers tell misses
// apart from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }

// Cache defines the minimal contract for a key-value cache.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get fetches the value for key. Misses are reported as ErrMiss;
	// any other error is a transport or server error.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with the provided TTL. Zero or negative TTL
	// means no expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes the given keys and returns the number of keys removed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping verifies connectivity with the cache backend.
	Ping(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}
