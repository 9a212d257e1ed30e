// Package pipeline executes routing requests with caching. It sits between
// the surfaces (CLI, API) and the core router so both share one caching and
// batching implementation.
package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/routekit/elbow/pkg/cache"
	"github.com/routekit/elbow/pkg/router"
	"github.com/routekit/elbow/pkg/scenario"
)

// Runner routes connector paths with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RouteWithCacheInfo routes a single request with caching and reports
// whether the result came from the cache.
//
// Cache keys derive from the canonical encoding of the options, so
// identical requests share an entry regardless of which surface produced
// them. When refresh is true the cache is bypassed and the fresh result
// overwrites any stored entry.
func (r *Runner) RouteWithCacheInfo(ctx context.Context, opts router.Options, refresh bool) (*router.Byproduct, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.RouteKey(cache.Hash(scenario.MarshalOptions(opts)))

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			bp, err := scenario.UnmarshalByproduct(data)
			if err == nil {
				return bp, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	bp, err := router.Route(opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := scenario.MarshalByproduct(bp); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLRoute)
	}

	return bp, false, nil // Cache miss
}

// Route is a convenience wrapper that calls RouteWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Route(ctx context.Context, opts router.Options) (*router.Byproduct, error) {
	bp, _, err := r.RouteWithCacheInfo(ctx, opts, false)
	return bp, err
}

// RouteRequest routes a single scenario request.
func (r *Runner) RouteRequest(ctx context.Context, req scenario.Request, refresh bool) (*router.Byproduct, bool, error) {
	opts, err := req.Options()
	if err != nil {
		return nil, false, fmt.Errorf("route %q: %w", req.Name, err)
	}
	return r.RouteWithCacheInfo(ctx, opts, refresh)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
