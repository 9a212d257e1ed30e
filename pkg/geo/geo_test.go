package geo

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := Rect{Origin: Pt(10, 20), Size: Size{Width: 100, Height: 50}}

	if r.Left() != 10 || r.Top() != 20 || r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("edges = %d,%d,%d,%d; want 10,20,110,70", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if got := r.Center(); got != Pt(60, 45) {
		t.Errorf("Center() = %v; want (60,45)", got)
	}
}

func TestRectCorners(t *testing.T) {
	r := RectFromLTRB(0, 0, 100, 100)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"NorthWest", r.NorthWest(), Pt(0, 0)},
		{"NorthEast", r.NorthEast(), Pt(100, 0)},
		{"SouthEast", r.SouthEast(), Pt(100, 100)},
		{"SouthWest", r.SouthWest(), Pt(0, 100)},
		{"North", r.North(), Pt(50, 0)},
		{"East", r.East(), Pt(100, 50)},
		{"South", r.South(), Pt(50, 100)},
		{"West", r.West(), Pt(0, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v; want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := RectFromLTRB(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(5, 5), true},
		{"top-left corner", Pt(0, 0), true},
		{"bottom-right corner", Pt(10, 10), true},
		{"on right edge", Pt(10, 3), true},
		{"just outside right", Pt(11, 5), false},
		{"above", Pt(5, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v; want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersectsOpenInterval(t *testing.T) {
	base := RectFromLTRB(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", RectFromLTRB(5, 5, 15, 15), true},
		{"contained", RectFromLTRB(2, 2, 8, 8), true},
		{"edge touching right", RectFromLTRB(10, 0, 20, 10), false},
		{"edge touching bottom", RectFromLTRB(0, 10, 10, 20), false},
		{"corner touching", RectFromLTRB(10, 10, 20, 20), false},
		{"disjoint", RectFromLTRB(20, 20, 30, 30), false},
		{"degenerate segment through interior", RectFromPoints(Pt(-5, 5), Pt(15, 5)), true},
		{"degenerate segment along edge", RectFromPoints(Pt(-5, 0), Pt(15, 0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v; want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := RectFromLTRB(10, 10, 20, 20)

	got := r.Inflate(5, 3)
	want := RectFromLTRB(5, 7, 25, 23)
	if got != want {
		t.Errorf("Inflate(5,3) = %+v; want %+v", got, want)
	}

	// Inflating by zero is the identity.
	if r.Inflate(0, 0) != r {
		t.Error("Inflate(0,0) should not change the rect")
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTRB(0, 0, 10, 10)
	b := RectFromLTRB(20, -5, 30, 5)

	got := a.Union(b)
	want := RectFromLTRB(0, -5, 30, 10)
	if got != want {
		t.Errorf("Union = %+v; want %+v", got, want)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v; want 5", got)
	}
	if got := Distance(Pt(2, 2), Pt(2, 2)); got != 0 {
		t.Errorf("Distance of identical points = %v; want 0", got)
	}
	if got := Distance(Pt(0, 0), Pt(1, 1)); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Distance = %v; want sqrt(2)", got)
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Direction
	}{
		{"same y", Pt(0, 5), Pt(10, 5), DirectionHorizontal},
		{"same x", Pt(5, 0), Pt(5, 10), DirectionVertical},
		{"diagonal", Pt(0, 0), Pt(3, 4), DirectionOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionOf(tt.a, tt.b); got != tt.want {
				t.Errorf("DirectionOf = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestSideOutward(t *testing.T) {
	tests := []struct {
		side Side
		want Cardinal
	}{
		{SideTop, CardinalNorth},
		{SideRight, CardinalEast},
		{SideBottom, CardinalSouth},
		{SideLeft, CardinalWest},
	}
	for _, tt := range tests {
		if got := tt.side.Outward(); got != tt.want {
			t.Errorf("%v.Outward() = %v; want %v", tt.side, got, tt.want)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, name := range []string{"top", "right", "bottom", "left"} {
		side, ok := ParseSide(name)
		if !ok {
			t.Fatalf("ParseSide(%q) failed", name)
		}
		if side.String() != name {
			t.Errorf("round trip %q -> %v", name, side)
		}
	}
	if _, ok := ParseSide("center"); ok {
		t.Error("ParseSide should reject unknown names")
	}
}

func TestCardinalTranslate(t *testing.T) {
	p := Pt(10, 10)

	tests := []struct {
		dir  Cardinal
		want Point
	}{
		{CardinalNorth, Pt(10, 5)},
		{CardinalEast, Pt(15, 10)},
		{CardinalSouth, Pt(10, 15)},
		{CardinalWest, Pt(5, 10)},
	}
	for _, tt := range tests {
		if got := tt.dir.Translate(p, 5); got != tt.want {
			t.Errorf("%v.Translate = %v; want %v", tt.dir, got, tt.want)
		}
	}
}

func TestCardinalOpposite(t *testing.T) {
	for _, c := range []Cardinal{CardinalNorth, CardinalEast, CardinalSouth, CardinalWest} {
		if got := c.Opposite().Opposite(); got != c {
			t.Errorf("%v double Opposite = %v", c, got)
		}
	}
}

func TestLineHeading(t *testing.T) {
	tests := []struct {
		name   string
		line   Line
		want   Cardinal
		wantOK bool
	}{
		{"east", Line{Pt(0, 0), Pt(10, 0)}, CardinalEast, true},
		{"west", Line{Pt(10, 0), Pt(0, 0)}, CardinalWest, true},
		{"south", Line{Pt(0, 0), Pt(0, 10)}, CardinalSouth, true},
		{"north", Line{Pt(0, 10), Pt(0, 0)}, CardinalNorth, true},
		{"degenerate", Line{Pt(3, 3), Pt(3, 3)}, CardinalNorth, false},
		{"diagonal", Line{Pt(0, 0), Pt(5, 5)}, CardinalNorth, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.line.Heading()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v; want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Heading = %v; want %v", got, tt.want)
			}
		})
	}
}
