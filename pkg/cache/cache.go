// Package cache stores rendered chart artifacts keyed by document content.
//
// The build pipeline consults the cache before running a sink, so unchanged
// definitions skip rendering. Exports captured from a browser are cached the
// same way, keyed by the document and the image options.
//
// Three backends are provided:
//   - [FileCache] keeps entries as files under a directory (CLI default)
//   - [RedisCache] shares entries between machines through a Redis server
//   - [NullCache] never stores anything (caching disabled)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default entry lifetimes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLExport   = 24 * time.Hour
)

// NullCache never stores anything. Every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache with caching disabled.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }

var _ Cache = (*NullCache)(nil)
