package router

import (
	"cmp"
	"slices"

	"github.com/routekit/elbow/pkg/geo"
)

// extractSpots derives the candidate waypoints the path may bend at: the
// four corners of every routable grid cell plus the given extra points
// (the two resolved connector locations and their antennas, which must be
// reachable even when they lie on a shape boundary).
//
// Spots are deduplicated by exact coordinate and returned sorted by
// (Y, X) so graph node indices are deterministic for identical inputs.
func extractSpots(grid []geo.Rect, extras ...geo.Point) []geo.Point {
	seen := make(map[geo.Point]struct{}, len(grid)*4+len(extras))
	add := func(p geo.Point) {
		seen[p] = struct{}{}
	}

	for _, cell := range grid {
		add(cell.NorthWest())
		add(cell.NorthEast())
		add(cell.SouthEast())
		add(cell.SouthWest())
	}
	for _, p := range extras {
		add(p)
	}

	spots := make([]geo.Point, 0, len(seen))
	for p := range seen {
		spots = append(spots, p)
	}
	slices.SortFunc(spots, func(a, b geo.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return spots
}
