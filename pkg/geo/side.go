package geo

// Side identifies one of a rectangle's four edges. Connector points
// attach to a shape by side plus an offset along that side.
//
// Side is a closed enumeration; switches over it should be exhaustive.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// sideNames maps sides to their canonical lowercase names, which are also
// the accepted spellings in scenario files.
var sideNames = map[Side]string{
	SideTop:    "top",
	SideRight:  "right",
	SideBottom: "bottom",
	SideLeft:   "left",
}

// String returns the lowercase name of the side.
func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the four defined sides.
func (s Side) Valid() bool { return s >= SideTop && s <= SideLeft }

// Outward returns the cardinal direction pointing away from a shape
// through this side: a connector leaving a shape's right side travels
// east, and so on.
func (s Side) Outward() Cardinal {
	switch s {
	case SideTop:
		return CardinalNorth
	case SideRight:
		return CardinalEast
	case SideBottom:
		return CardinalSouth
	default:
		return CardinalWest
	}
}

// ParseSide converts a lowercase side name ("top", "right", "bottom",
// "left") into a Side. It returns false for anything else.
func ParseSide(name string) (Side, bool) {
	for side, n := range sideNames {
		if n == name {
			return side, true
		}
	}
	return SideTop, false
}

// Cardinal is an axis-aligned compass direction of travel. Y grows
// downward, so north means decreasing Y.
type Cardinal int

const (
	CardinalNorth Cardinal = iota
	CardinalEast
	CardinalSouth
	CardinalWest
)

// String returns the lowercase name of the cardinal direction.
func (c Cardinal) String() string {
	switch c {
	case CardinalNorth:
		return "north"
	case CardinalEast:
		return "east"
	case CardinalSouth:
		return "south"
	default:
		return "west"
	}
}

// Opposite returns the reverse direction.
func (c Cardinal) Opposite() Cardinal {
	switch c {
	case CardinalNorth:
		return CardinalSouth
	case CardinalEast:
		return CardinalWest
	case CardinalSouth:
		return CardinalNorth
	default:
		return CardinalEast
	}
}

// Translate moves p one step of the given length in direction c.
func (c Cardinal) Translate(p Point, length int) Point {
	switch c {
	case CardinalNorth:
		return Pt(p.X, p.Y-length)
	case CardinalEast:
		return Pt(p.X+length, p.Y)
	case CardinalSouth:
		return Pt(p.X, p.Y+length)
	default:
		return Pt(p.X-length, p.Y)
	}
}
