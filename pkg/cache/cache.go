// Package cache provides artifact caching for recviz.
//
// Enumeration is deterministic and pure, so a rendered artifact is fully
// determined by the problem inputs and render options. The cache keys on
// a SHA-256 hash of both, letting repeated runs (CLI re-invocations,
// repeated form submissions in server mode) skip enumeration and
// rendering entirely.
//
// Backends:
//   - [FileCache]: directory-backed, for CLI usage (default)
//   - [RedisCache]: for server mode
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// TTL values for cached artifacts.
const (
	// TTLArtifact is how long rendered artifacts stay cached. Inputs
	// fully determine the output, so this is a size bound, not a
	// freshness bound.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey generates a cache key for one rendered artifact.
// opts must be JSON-serializable; it is hashed together with the
// problem name and format so that any option change misses.
func ArtifactKey(problem, format string, opts any) string {
	return hashKey("artifact", problem, format, opts)
}
