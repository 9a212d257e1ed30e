package router

import (
	"errors"
	"fmt"

	"github.com/routekit/elbow/pkg/geo"
)

var (
	// ErrInvalidConfig is returned by [Route] when the options are
	// malformed: a connector distance outside [0, 1], a negative margin or
	// shape size, or global bounds that exclude a connector point once
	// margins are applied. Detected before any grid construction; no
	// partial result is returned.
	ErrInvalidConfig = errors.New("invalid routing configuration")

	// ErrUnroutable is returned by [Route] when no orthogonal path exists
	// between the two connector points, for example when one shape's
	// margined bounds fully enclose the other or the global bounds starve
	// the grid of routable cells. The algorithm is deterministic, so
	// retrying with identical options cannot succeed; only a changed input
	// (typically a reduced ShapeMargin) can.
	ErrUnroutable = errors.New("no orthogonal path between connector points")
)

// Options is a single routing request.
type Options struct {
	// PointA and PointB are the two connector endpoints. The final
	// polyline starts at PointA's resolved location and ends at PointB's.
	PointA ConnectorPoint
	PointB ConnectorPoint

	// ShapeMargin is the clearance kept around each shape. Both shapes are
	// inflated by this amount before grid construction, and no searched
	// segment may cut through the inflated interiors. Must be >= 0.
	ShapeMargin int

	// GlobalBoundsMargin expands GlobalBounds symmetrically before it is
	// applied. Ignored when GlobalBounds is nil. Must be >= 0.
	GlobalBoundsMargin int

	// GlobalBounds optionally constrains the routable area. nil means
	// unbounded. When set, the bounds inflated by GlobalBoundsMargin must
	// contain both resolved connector points and both antennas.
	GlobalBounds *geo.Rect
}

// effectiveBounds returns the global bounds inflated by the bounds margin,
// or nil when the request is unbounded.
func (o Options) effectiveBounds() *geo.Rect {
	if o.GlobalBounds == nil {
		return nil
	}
	b := o.GlobalBounds.Inflate(o.GlobalBoundsMargin, o.GlobalBoundsMargin)
	return &b
}

// validate checks every constraint that can be decided before grid
// construction. All failures wrap ErrInvalidConfig.
func (o Options) validate() error {
	if err := o.PointA.validate("point A"); err != nil {
		return err
	}
	if err := o.PointB.validate("point B"); err != nil {
		return err
	}
	if o.ShapeMargin < 0 {
		return fmt.Errorf("%w: shape margin %d is negative", ErrInvalidConfig, o.ShapeMargin)
	}
	if o.GlobalBoundsMargin < 0 {
		return fmt.Errorf("%w: global bounds margin %d is negative", ErrInvalidConfig, o.GlobalBoundsMargin)
	}

	if bounds := o.effectiveBounds(); bounds != nil {
		check := []struct {
			name string
			p    geo.Point
		}{
			{"point A", o.PointA.Location()},
			{"point B", o.PointB.Location()},
			{"point A antenna", o.PointA.Antenna(o.ShapeMargin)},
			{"point B antenna", o.PointB.Antenna(o.ShapeMargin)},
		}
		for _, c := range check {
			if !bounds.Contains(c.p) {
				return fmt.Errorf("%w: global bounds exclude %s at (%d, %d)", ErrInvalidConfig, c.name, c.p.X, c.p.Y)
			}
		}
	}
	return nil
}

// Route computes the orthogonal connector path described by opts.
//
// The returned byproduct holds the final polyline in Connections together
// with the intermediate geometry of every stage: the horizontal and
// vertical rulers that partition the plane, the obstacle-free grid cells,
// and the candidate waypoints (spots) the search ran over. Everything is
// freshly allocated; nothing aliases the request.
//
// Route returns ErrInvalidConfig for malformed options and ErrUnroutable
// when the two connector points cannot be joined. There are no other
// failure modes and no fallback heuristics.
func Route(opts Options) (*Byproduct, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	locA, locB := opts.PointA.Location(), opts.PointB.Location()
	antA, antB := opts.PointA.Antenna(opts.ShapeMargin), opts.PointB.Antenna(opts.ShapeMargin)
	inflatedA := opts.PointA.Shape.Inflate(opts.ShapeMargin, opts.ShapeMargin)
	inflatedB := opts.PointB.Shape.Inflate(opts.ShapeMargin, opts.ShapeMargin)
	bounds := opts.effectiveBounds()

	hRulers, vRulers := rulers(inflatedA, inflatedB, locA, locB, bounds)
	grid := buildGrid(hRulers, vRulers, inflatedA, inflatedB)
	spots := extractSpots(grid, locA, locB, antA, antB)
	g := buildGraph(spots, inflatedA, inflatedB)

	// Both antennas were fed into the spot set, so the lookups cannot miss.
	src, _ := g.node(antA)
	dst, _ := g.node(antB)

	path := shortestPath(g, src, dst)
	if path == nil {
		return nil, fmt.Errorf("%w: (%d, %d) -> (%d, %d) with margin %d",
			ErrUnroutable, locA.X, locA.Y, locB.X, locB.Y, opts.ShapeMargin)
	}

	// The searched path runs antenna to antenna; the terminal stubs back to
	// the resolved boundary points are axis-aligned by construction.
	points := make([]geo.Point, 0, len(path)+2)
	points = append(points, locA)
	for _, idx := range path {
		points = append(points, g.at(idx))
	}
	points = append(points, locB)
	points = simplify(points)

	return &Byproduct{
		HRulers:     hRulers,
		VRulers:     vRulers,
		Spots:       spots,
		Grid:        grid,
		Connections: toLines(points),
	}, nil
}
