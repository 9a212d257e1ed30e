// Package scenario is the serialization counterpart of the routing core:
// the core types stay tag-free, and this package carries the TOML/JSON
// representations of routing requests (scenario files) and results.
//
// A scenario file is a named batch of independent routing requests:
//
//	name = "demo"
//
//	[[routes]]
//	name         = "a-to-b"
//	shape_margin = 10
//
//	[routes.a]
//	side     = "right"
//	distance = 0.5
//	shape    = { x = 0, y = 0, width = 100, height = 100 }
//
//	[routes.b]
//	side     = "left"
//	distance = 0.5
//	shape    = { x = 300, y = 0, width = 100, height = 100 }
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/routekit/elbow/pkg/errors"
	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
)

// Shape is the serialized form of a rectangle.
type Shape struct {
	X      int `toml:"x" json:"x"`
	Y      int `toml:"y" json:"y"`
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// Rect converts to the core rectangle type.
func (s Shape) Rect() geo.Rect {
	return geo.Rect{Origin: geo.Pt(s.X, s.Y), Size: geo.Size{Width: s.Width, Height: s.Height}}
}

// shapeFromRect converts a core rectangle to its serialized form.
func shapeFromRect(r geo.Rect) Shape {
	return Shape{X: r.Left(), Y: r.Top(), Width: r.Width(), Height: r.Height()}
}

// Endpoint is the serialized form of a connector point.
type Endpoint struct {
	Shape    Shape   `toml:"shape" json:"shape"`
	Side     string  `toml:"side" json:"side"`
	Distance float64 `toml:"distance" json:"distance"`
}

// Request is one routing request within a scenario.
type Request struct {
	Name               string   `toml:"name" json:"name"`
	A                  Endpoint `toml:"a" json:"a"`
	B                  Endpoint `toml:"b" json:"b"`
	ShapeMargin        int      `toml:"shape_margin" json:"shape_margin"`
	GlobalBoundsMargin int      `toml:"global_bounds_margin" json:"global_bounds_margin"`
	GlobalBounds       *Shape   `toml:"global_bounds" json:"global_bounds,omitempty"`
}

// Scenario is a named batch of independent routing requests.
type Scenario struct {
	Name   string    `toml:"name" json:"name"`
	Routes []Request `toml:"routes" json:"routes"`
}

// DecodeTOML reads a scenario from TOML.
func DecodeTOML(r io.Reader) (*Scenario, error) {
	var s Scenario
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode TOML scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DecodeJSON reads a scenario from JSON.
func DecodeJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode JSON scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file, picking the codec from the extension
// (.toml or .json).
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f)
	case ".json":
		return DecodeJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scenario extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// validate checks structural constraints and assigns default route names.
func (s *Scenario) validate() error {
	if len(s.Routes) == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "scenario has no routes")
	}
	seen := make(map[string]struct{}, len(s.Routes))
	for i := range s.Routes {
		r := &s.Routes[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("route-%d", i+1)
		}
		if _, dup := seen[r.Name]; dup {
			return errors.New(errors.ErrCodeInvalidScenario, "duplicate route name %q", r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

// Route returns the request with the given name.
func (s *Scenario) Route(name string) (*Request, bool) {
	for i := range s.Routes {
		if s.Routes[i].Name == name {
			return &s.Routes[i], true
		}
	}
	return nil, false
}

// Options converts the request into core routing options. Side names are
// the only field the core cannot validate itself, so unknown sides fail
// here with an INVALID_SCENARIO error.
func (r Request) Options() (router.Options, error) {
	sideA, ok := geo.ParseSide(r.A.Side)
	if !ok {
		return router.Options{}, errors.New(errors.ErrCodeInvalidScenario, "route %q: unknown side %q for endpoint a", r.Name, r.A.Side)
	}
	sideB, ok := geo.ParseSide(r.B.Side)
	if !ok {
		return router.Options{}, errors.New(errors.ErrCodeInvalidScenario, "route %q: unknown side %q for endpoint b", r.Name, r.B.Side)
	}

	opts := router.Options{
		PointA:             router.ConnectorPoint{Shape: r.A.Shape.Rect(), Side: sideA, Distance: r.A.Distance},
		PointB:             router.ConnectorPoint{Shape: r.B.Shape.Rect(), Side: sideB, Distance: r.B.Distance},
		ShapeMargin:        r.ShapeMargin,
		GlobalBoundsMargin: r.GlobalBoundsMargin,
	}
	if r.GlobalBounds != nil {
		bounds := r.GlobalBounds.Rect()
		opts.GlobalBounds = &bounds
	}
	return opts, nil
}

// RequestFromOptions converts core options back to the serialized form.
// This is the canonical encoding used for cache keys, so its field order
// must stay stable.
func RequestFromOptions(opts router.Options) Request {
	req := Request{
		A: Endpoint{
			Shape:    shapeFromRect(opts.PointA.Shape),
			Side:     opts.PointA.Side.String(),
			Distance: opts.PointA.Distance,
		},
		B: Endpoint{
			Shape:    shapeFromRect(opts.PointB.Shape),
			Side:     opts.PointB.Side.String(),
			Distance: opts.PointB.Distance,
		},
		ShapeMargin:        opts.ShapeMargin,
		GlobalBoundsMargin: opts.GlobalBoundsMargin,
	}
	if opts.GlobalBounds != nil {
		bounds := shapeFromRect(*opts.GlobalBounds)
		req.GlobalBounds = &bounds
	}
	return req
}

// MarshalOptions returns the canonical JSON encoding of core options,
// used to derive cache keys. Identical options always encode to identical
// bytes.
func MarshalOptions(opts router.Options) []byte {
	data, _ := json.Marshal(RequestFromOptions(opts))
	return data
}
