// Package cache provides caching for the typesetting pipeline.
//
// The cache stores byte payloads keyed by strings, with per-entry TTLs.
// Three backends are provided:
//   - FileCache: file-based storage for CLI usage (XDG cache dir)
//   - RedisCache: Redis-backed storage for server deployments
//   - NullCache: no-op cache for tests or when caching is disabled
//
// Keys are generated through the [Keyer] interface so that the pipeline,
// API, and CLI agree on key layout. [NewScopedKeyer] adds a prefix for
// namespace isolation.
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
//	key := keyer.PagesKey(docHash, cache.PagesKeyOpts{MaxPages: 50})
//
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    // use cached pages
//	}
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached payload type.
const (
	// TTLDocument is the lifetime of parsed document entries.
	TTLDocument = 24 * time.Hour

	// TTLPages is the lifetime of typeset page set entries.
	TTLPages = 24 * time.Hour

	// TTLArtifact is the lifetime of rendered artifact entries.
	// Artifacts are pure functions of their page set, so they keep longer.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLHTTP is the lifetime of cached HTTP responses.
	TTLHTTP = time.Hour
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present (and unexpired).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
