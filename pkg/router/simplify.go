package router

import (
	"slices"

	"github.com/routekit/elbow/pkg/geo"
)

// simplify collapses a raw path into its minimal-bend form: consecutive
// duplicate points are dropped, and when three consecutive points are
// collinear (all sharing an X or all sharing a Y) the middle one is
// removed since it represents no direction change. Consecutive pairs are
// always axis-aligned by construction, so the result is the minimal
// orthogonal polyline.
//
// The input slice is consumed; callers must not reuse it.
func simplify(points []geo.Point) []geo.Point {
	points = slices.Compact(points)
	if len(points) < 3 {
		return points
	}

	out := []geo.Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		cur, next := points[i], points[i+1]
		if (prev.X == cur.X && cur.X == next.X) || (prev.Y == cur.Y && cur.Y == next.Y) {
			continue
		}
		out = append(out, cur)
	}
	return append(out, points[len(points)-1])
}

// toLines converts polyline vertices into ordered segments.
func toLines(points []geo.Point) []geo.Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]geo.Line, len(points)-1)
	for i := range lines {
		lines[i] = geo.Line{A: points[i], B: points[i+1]}
	}
	return lines
}
