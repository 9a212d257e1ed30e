package router

import (
	"slices"

	"github.com/routekit/elbow/pkg/geo"
)

// rulers derives the distinct horizontal (y) and vertical (x) coordinates
// that partition the plane around the two inflated shapes and the two
// resolved connector points. Any routable orthogonal path can place its
// bends on these coordinates without loss of optimality, because all
// obstacles are axis-aligned rectangles; this is the reduction that keeps
// the search space finite.
//
// When bounds is non-nil its edges join the ruler set and rulers outside
// it are dropped. Both outputs are sorted ascending and deduplicated.
func rulers(inflatedA, inflatedB geo.Rect, locA, locB geo.Point, bounds *geo.Rect) (h, v []int) {
	h = []int{
		inflatedA.Top(), inflatedA.Bottom(),
		inflatedB.Top(), inflatedB.Bottom(),
		locA.Y, locB.Y,
	}
	v = []int{
		inflatedA.Left(), inflatedA.Right(),
		inflatedB.Left(), inflatedB.Right(),
		locA.X, locB.X,
	}

	if bounds != nil {
		h = append(h, bounds.Top(), bounds.Bottom())
		v = append(v, bounds.Left(), bounds.Right())
		h = slices.DeleteFunc(h, func(y int) bool { return y < bounds.Top() || y > bounds.Bottom() })
		v = slices.DeleteFunc(v, func(x int) bool { return x < bounds.Left() || x > bounds.Right() })
	}

	slices.Sort(h)
	slices.Sort(v)
	return slices.Compact(h), slices.Compact(v)
}
