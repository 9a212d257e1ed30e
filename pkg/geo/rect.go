package geo

// Rect is an axis-aligned rectangle given by its top-left origin and size.
// The right and bottom edges are derived: Right = Origin.X + Size.Width,
// Bottom = Origin.Y + Size.Height. A zero-sized Rect is a degenerate line
// or point and is permitted everywhere; the routing graph relies on
// degenerate rects to test segment/obstacle overlap.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromLTRB builds a rectangle from its four edge coordinates.
func RectFromLTRB(left, top, right, bottom int) Rect {
	return Rect{
		Origin: Pt(left, top),
		Size:   Size{Width: right - left, Height: bottom - top},
	}
}

// RectFromPoints returns the minimal rectangle covering both points.
// For axis-aligned point pairs this is the degenerate segment rect used
// by the obstacle-crossing test.
func RectFromPoints(a, b Point) Rect {
	return RectFromLTRB(min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y))
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int { return r.Origin.X }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int { return r.Origin.Y }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() int { return r.Origin.X + r.Size.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Origin.Y + r.Size.Height }

// Width returns the rectangle's width.
func (r Rect) Width() int { return r.Size.Width }

// Height returns the rectangle's height.
func (r Rect) Height() int { return r.Size.Height }

// NorthWest returns the top-left corner.
func (r Rect) NorthWest() Point { return Pt(r.Left(), r.Top()) }

// NorthEast returns the top-right corner.
func (r Rect) NorthEast() Point { return Pt(r.Right(), r.Top()) }

// SouthEast returns the bottom-right corner.
func (r Rect) SouthEast() Point { return Pt(r.Right(), r.Bottom()) }

// SouthWest returns the bottom-left corner.
func (r Rect) SouthWest() Point { return Pt(r.Left(), r.Bottom()) }

// North returns the midpoint of the top edge.
func (r Rect) North() Point { return Pt(r.Center().X, r.Top()) }

// East returns the midpoint of the right edge.
func (r Rect) East() Point { return Pt(r.Right(), r.Center().Y) }

// South returns the midpoint of the bottom edge.
func (r Rect) South() Point { return Pt(r.Center().X, r.Bottom()) }

// West returns the midpoint of the left edge.
func (r Rect) West() Point { return Pt(r.Left(), r.Center().Y) }

// Center returns the center point, rounding toward the origin for odd
// dimensions (integer division).
func (r Rect) Center() Point {
	return Pt(r.Left()+r.Width()/2, r.Top()+r.Height()/2)
}

// Contains reports whether p lies within the rectangle. The test is
// inclusive on all four edges: points on the boundary are contained.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Inflate grows the rectangle symmetrically by h on the left and right
// and by v on the top and bottom. Negative values shrink it.
func (r Rect) Inflate(h, v int) Rect {
	return RectFromLTRB(r.Left()-h, r.Top()-v, r.Right()+h, r.Bottom()+v)
}

// Intersects reports whether the two rectangles overlap on an open
// interval: rectangles that merely touch along an edge or corner do NOT
// intersect. This is the test that decides whether a grid cell or a path
// segment is blocked by an obstacle; boundary contact is always allowed.
func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Union returns the minimal rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFromLTRB(
		min(r.Left(), o.Left()),
		min(r.Top(), o.Top()),
		max(r.Right(), o.Right()),
		max(r.Bottom(), o.Bottom()),
	)
}
