package geo

// Line is a directed segment from A to B. Routed connector paths are
// emitted as ordered Line sequences whose segments are always purely
// horizontal or vertical.
type Line struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 { return Distance(l.A, l.B) }

// Direction classifies the segment's axis.
func (l Line) Direction() Direction { return DirectionOf(l.A, l.B) }

// Heading returns the cardinal direction of travel from A to B and true,
// or CardinalNorth and false when the segment is degenerate (A == B) or
// diagonal. Y grows downward, so a segment with increasing Y heads south.
func (l Line) Heading() (Cardinal, bool) {
	switch {
	case l.A == l.B:
		return CardinalNorth, false
	case l.A.Y == l.B.Y && l.B.X > l.A.X:
		return CardinalEast, true
	case l.A.Y == l.B.Y:
		return CardinalWest, true
	case l.A.X == l.B.X && l.B.Y > l.A.Y:
		return CardinalSouth, true
	case l.A.X == l.B.X:
		return CardinalNorth, true
	default:
		return CardinalNorth, false
	}
}
