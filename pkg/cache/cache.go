// Package cache provides the opt-in result cache used by the routing
// pipeline. The routing engine itself is a pure function and never
// caches; callers that route the same request repeatedly can plug one of
// these backends into pipeline.Runner to skip recomputation.
//
// Keys are derived from the full input tuple (a hash of the canonical
// request encoding), so a cache hit is always byte-identical to a fresh
// computation.
package cache

import (
	"context"
	"time"
)

// TTLRoute is how long cached routing results stay valid. Routing is
// deterministic, so entries never go stale; the TTL only bounds disk and
// memory growth.
const TTLRoute = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys.
//
// Implementations must be safe for concurrent use: the pipeline's batch
// executor calls Get and Set from multiple worker goroutines.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A zero ttl means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer derives cache keys for routing requests.
type Keyer interface {
	// RouteKey returns the cache key for a request whose canonical
	// encoding hashes to optsHash.
	RouteKey(optsHash string) string
}

// DefaultKeyer is the standard key scheme: "route:" + hash.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RouteKey implements Keyer.
func (DefaultKeyer) RouteKey(optsHash string) string { return "route:" + optsHash }

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces
// when several tools share one backend (e.g. a shared Redis).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
// A nil inner keyer defaults to the standard scheme.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RouteKey implements Keyer.
func (k *ScopedKeyer) RouteKey(optsHash string) string {
	return k.prefix + k.inner.RouteKey(optsHash)
}
