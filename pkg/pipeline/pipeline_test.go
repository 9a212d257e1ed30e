package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/routekit/elbow/pkg/cache"
	"github.com/routekit/elbow/pkg/errors"
	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
	"github.com/routekit/elbow/pkg/scenario"
)

func sideBySideOpts() router.Options {
	return router.Options{
		PointA:      router.ConnectorPoint{Shape: geo.RectFromLTRB(0, 0, 100, 100), Side: geo.SideRight, Distance: 0.5},
		PointB:      router.ConnectorPoint{Shape: geo.RectFromLTRB(300, 0, 400, 100), Side: geo.SideLeft, Distance: 0.5},
		ShapeMargin: 10,
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Fatalf("defaults not applied: %+v", r)
	}
	defer r.Close()

	bp, err := r.Route(context.Background(), sideBySideOpts())
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if bp.Bends() != 0 {
		t.Errorf("bends = %d, want 0", bp.Bends())
	}
}

func TestRouteWithCacheInfo(t *testing.T) {
	mem := cache.NewMemoryCache()
	r := NewRunner(mem, nil, nil)
	defer r.Close()
	ctx := context.Background()
	opts := sideBySideOpts()

	first, hit, err := r.RouteWithCacheInfo(ctx, opts, false)
	if err != nil {
		t.Fatalf("first route: %v", err)
	}
	if hit {
		t.Error("first route reported a cache hit")
	}
	if mem.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", mem.Len())
	}

	second, hit, err := r.RouteWithCacheInfo(ctx, opts, false)
	if err != nil {
		t.Fatalf("second route: %v", err)
	}
	if !hit {
		t.Error("second route missed the cache")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from computed result")
	}

	// Refresh bypasses the cache but still stores the fresh result.
	_, hit, err = r.RouteWithCacheInfo(ctx, opts, true)
	if err != nil {
		t.Fatalf("refresh route: %v", err)
	}
	if hit {
		t.Error("refresh reported a cache hit")
	}
}

func TestRouteErrorNotCached(t *testing.T) {
	mem := cache.NewMemoryCache()
	r := NewRunner(mem, nil, nil)
	defer r.Close()

	opts := sideBySideOpts()
	opts.ShapeMargin = -1
	if _, err := r.Route(context.Background(), opts); err == nil {
		t.Fatal("expected error")
	}
	if mem.Len() != 0 {
		t.Errorf("cache entries = %d, want 0", mem.Len())
	}
}

func TestExecute(t *testing.T) {
	const sampleTOML = `
name = "batch"

[[routes]]
name = "ok"
shape_margin = 10
[routes.a]
side     = "right"
distance = 0.5
shape    = { x = 0, y = 0, width = 100, height = 100 }
[routes.b]
side     = "left"
distance = 0.5
shape    = { x = 300, y = 0, width = 100, height = 100 }

[[routes]]
name = "bad-side"
[routes.a]
side  = "diagonal"
shape = { x = 0, y = 0, width = 10, height = 10 }
[routes.b]
side  = "left"
shape = { x = 50, y = 0, width = 10, height = 10 }
`
	s, err := scenario.DecodeTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}

	r := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer r.Close()

	res, err := r.Execute(context.Background(), s, BatchOptions{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.RunID == "" {
		t.Error("missing run ID")
	}
	if len(res.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(res.Outcomes))
	}
	if res.Failed() != 1 {
		t.Errorf("failed = %d, want 1", res.Failed())
	}

	// Outcomes keep input order.
	if res.Outcomes[0].Name != "ok" || res.Outcomes[1].Name != "bad-side" {
		t.Errorf("outcome order = %q, %q", res.Outcomes[0].Name, res.Outcomes[1].Name)
	}
	if res.Outcomes[0].Err != nil {
		t.Errorf("route ok failed: %v", res.Outcomes[0].Err)
	}
	if errors.GetCode(res.Outcomes[1].Err) != errors.ErrCodeInvalidScenario {
		t.Errorf("route bad-side error = %v", res.Outcomes[1].Err)
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &scenario.Scenario{Routes: []scenario.Request{{Name: "r"}}}
	if _, err := r.Execute(ctx, s, BatchOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}
