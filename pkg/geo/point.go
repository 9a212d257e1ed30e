package geo

import "math"

// Point is an integer coordinate in diagram space. The Y axis grows
// downward, matching the usual screen convention for diagram layouts.
//
// Point is comparable and is used directly as a map key when interning
// routing-graph nodes.
type Point struct {
	X, Y int
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Size is an integer width/height pair. Negative dimensions are not
// meaningful; callers are expected to supply valid shapes (the routing
// entry point validates this, the type does not).
type Size struct {
	Width, Height int
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction classifies the relationship between two points. Only
// horizontally or vertically aligned point pairs are eligible for
// routing-graph edges; everything else is DirectionOther.
type Direction int

const (
	// DirectionHorizontal means the two points share a Y coordinate.
	DirectionHorizontal Direction = iota
	// DirectionVertical means the two points share an X coordinate.
	DirectionVertical
	// DirectionOther means the points are not axis-aligned.
	DirectionOther
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	default:
		return "other"
	}
}

// DirectionOf classifies the segment a→b. Coincident points classify as
// horizontal; callers that care should deduplicate first.
func DirectionOf(a, b Point) Direction {
	switch {
	case a.Y == b.Y:
		return DirectionHorizontal
	case a.X == b.X:
		return DirectionVertical
	default:
		return DirectionOther
	}
}
