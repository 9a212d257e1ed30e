package scenario

import (
	"encoding/json"
	"io"

	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
)

// Point is the serialized form of a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Line is the serialized form of an axis-aligned segment.
type Line struct {
	A       Point  `json:"a"`
	B       Point  `json:"b"`
	Heading string `json:"heading,omitempty"`
}

// Result is the serialized outcome of one routed request, carrying the
// full routing byproduct for rendering and inspection.
type Result struct {
	Name        string  `json:"name"`
	HRulers     []int   `json:"h_rulers"`
	VRulers     []int   `json:"v_rulers"`
	Spots       []Point `json:"spots"`
	Grid        []Shape `json:"grid"`
	Connections []Line  `json:"connections"`
	Bends       int     `json:"bends"`
	Length      float64 `json:"length"`
}

func pointFrom(p geo.Point) Point { return Point{X: p.X, Y: p.Y} }

// ResultFrom converts a routing byproduct into its serialized form.
func ResultFrom(name string, bp *router.Byproduct) *Result {
	res := &Result{
		Name:        name,
		HRulers:     bp.HRulers,
		VRulers:     bp.VRulers,
		Spots:       make([]Point, len(bp.Spots)),
		Grid:        make([]Shape, len(bp.Grid)),
		Connections: make([]Line, len(bp.Connections)),
		Bends:       bp.Bends(),
		Length:      bp.Length(),
	}
	for i, p := range bp.Spots {
		res.Spots[i] = pointFrom(p)
	}
	for i, cell := range bp.Grid {
		res.Grid[i] = shapeFromRect(cell)
	}
	for i, l := range bp.Connections {
		res.Connections[i] = Line{A: pointFrom(l.A), B: pointFrom(l.B)}
		if heading, ok := l.Heading(); ok {
			res.Connections[i].Heading = heading.String()
		}
	}
	return res
}

// Byproduct converts the serialized result back into the core type.
func (r *Result) Byproduct() *router.Byproduct {
	bp := &router.Byproduct{
		HRulers:     r.HRulers,
		VRulers:     r.VRulers,
		Spots:       make([]geo.Point, len(r.Spots)),
		Grid:        make([]geo.Rect, len(r.Grid)),
		Connections: make([]geo.Line, len(r.Connections)),
	}
	for i, p := range r.Spots {
		bp.Spots[i] = geo.Pt(p.X, p.Y)
	}
	for i, s := range r.Grid {
		bp.Grid[i] = s.Rect()
	}
	for i, l := range r.Connections {
		bp.Connections[i] = geo.Line{A: geo.Pt(l.A.X, l.A.Y), B: geo.Pt(l.B.X, l.B.Y)}
	}
	return bp
}

// MarshalByproduct encodes a byproduct for storage.
func MarshalByproduct(bp *router.Byproduct) ([]byte, error) {
	return json.Marshal(ResultFrom("", bp))
}

// UnmarshalByproduct decodes a stored byproduct.
func UnmarshalByproduct(data []byte) (*router.Byproduct, error) {
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res.Byproduct(), nil
}

// WriteResultsJSON writes results as indented JSON.
func WriteResultsJSON(w io.Writer, results []*Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
