// Package cache provides in-process caching for layouts and rendered
// artifacts.
//
// A single render command often produces several formats from one layout,
// and the interactive viewer re-renders the same variants many times. The
// pipeline keys layouts by variant and layout options, and artifacts by
// layout hash and render options, so repeated work is served from memory.
// Nothing is written to disk.
//
// # Implementations
//
//   - [MemoryCache]: map-backed cache with per-entry TTL
//   - [NullCache]: never stores anything (caching disabled)
//
// # Keys
//
// A [Keyer] builds deterministic keys from the inputs that affect a
// cached value. [ScopedKeyer] prefixes every key, e.g. to keep separate
// namespaces per visualization type.
package cache

import (
	"context"
	"time"
)

// TTLs for cached values. Workflow data is compiled in, so entries only
// expire to bound memory in long viewer sessions.
const (
	TTLLayout   = 30 * time.Minute
	TTLArtifact = 10 * time.Minute
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
