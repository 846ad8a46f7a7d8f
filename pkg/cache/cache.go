// Package cache stores rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [RedisCache]: a Redis server shared by API instances
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// Keys are built by a [Keyer] from a content hash of the input and the
// options that change the output:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.GraphKey(cache.Hash([]byte(dot)), cache.GraphKeyOpts{Format: "png"})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
//
// A [ScopedKeyer] prefixes every key so several tools can share one Redis
// database.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	GraphTTL  = 7 * 24 * time.Hour
	ReportTTL = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported with ok false and a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
