// Package cache provides the render artifact cache.
//
// Rendering the fixed composition is cheap for SVG but involves shelling
// out to rsvg-convert for PNG and PDF, so artifacts are cached keyed by a
// content hash of the scene plus the render options. Three implementations
// are provided:
//
//   - [FileCache]: file-based cache for CLI usage (default)
//   - [RedisCache]: redis-backed cache for the serve surface
//   - [NullCache]: no-op cache for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime for cached artifacts. Artifacts are
// content-addressed, so a long TTL is safe; it only bounds disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a cache hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. Zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts captures everything that influences a rendered artifact
// beyond the scene itself.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Legend bool    `json:"legend"`
	Hover  bool    `json:"hover"`
	Scale  float64 `json:"scale,omitempty"`
}

// ArtifactKey generates a cache key for a rendered artifact from the scene
// content hash and the render options.
func ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
