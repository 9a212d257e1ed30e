package router

import "github.com/routekit/elbow/pkg/geo"

// Byproduct is the full result of a routing request: the final connector
// polyline plus the intermediate geometry of every stage, kept for
// debugging and visualization. All slices are freshly allocated per call
// and share nothing with the request.
type Byproduct struct {
	// HRulers are the distinct y coordinates partitioning the plane,
	// sorted ascending.
	HRulers []int

	// VRulers are the distinct x coordinates, sorted ascending.
	VRulers []int

	// Spots are the candidate waypoints the search ran over, sorted by
	// (Y, X).
	Spots []geo.Point

	// Grid holds the obstacle-free cells in row-major construction order.
	Grid []geo.Rect

	// Connections is the final simplified polyline as ordered segments.
	// The first segment starts at point A's resolved location and the last
	// ends at point B's.
	Connections []geo.Line
}

// Path returns the polyline's vertices in order.
func (b *Byproduct) Path() []geo.Point {
	if len(b.Connections) == 0 {
		return nil
	}
	points := make([]geo.Point, 0, len(b.Connections)+1)
	points = append(points, b.Connections[0].A)
	for _, l := range b.Connections {
		points = append(points, l.B)
	}
	return points
}

// Bends returns the number of direction changes along the polyline. Since
// the simplifier removes collinear vertices, this is one less than the
// segment count.
func (b *Byproduct) Bends() int {
	if len(b.Connections) == 0 {
		return 0
	}
	return len(b.Connections) - 1
}

// Length returns the total Euclidean length of the polyline.
func (b *Byproduct) Length() float64 {
	var total float64
	for _, l := range b.Connections {
		total += l.Length()
	}
	return total
}

// Headings returns the cardinal direction of travel for each segment, in
// segment order. Every segment of a routed path is axis-aligned and
// non-degenerate, so each has a heading.
func (b *Byproduct) Headings() []geo.Cardinal {
	headings := make([]geo.Cardinal, 0, len(b.Connections))
	for _, l := range b.Connections {
		h, _ := l.Heading()
		headings = append(headings, h)
	}
	return headings
}
