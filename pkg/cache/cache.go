// Package cache stores encoded atlas artifacts between runs.
//
// Rendering is cheap but not free, and palette files rarely change; when the
// random seed is pinned the output is a pure function of the palette bytes
// and the seed, so the encoded PNG can be reused. Keys are SHA-256 content
// hashes, never paths, so renamed files still hit.
//
// Two backends exist: a file cache under the user cache directory for CLI
// use, and a null cache that disables caching entirely (the default when the
// seed is not pinned, since the output is then nondeterministic).
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached atlases stay valid. Content-hashed keys
// never go stale, so this only bounds disk growth.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the storage interface for rendered atlas artifacts.
type Cache interface {
	// Get retrieves the value for key. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
