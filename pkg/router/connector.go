package router

import (
	"fmt"

	"github.com/routekit/elbow/pkg/geo"
)

// ConnectorPoint identifies the exact boundary location where a connector
// leaves or enters a shape: a side of the shape's rectangle plus a
// fractional offset along that side.
type ConnectorPoint struct {
	Shape geo.Rect

	// Side is the edge of Shape the connector attaches to.
	Side geo.Side

	// Distance is the fractional offset along Side in [0, 1], measured
	// left-to-right for top/bottom sides and top-to-bottom for left/right
	// sides. 0.5 is the side's midpoint.
	Distance float64
}

// Location resolves the connector point to its concrete boundary
// coordinate. Fractional offsets truncate toward the side's start, so the
// result always lies on the shape boundary.
func (c ConnectorPoint) Location() geo.Point {
	switch c.Side {
	case geo.SideTop:
		return geo.Pt(c.Shape.Left()+int(c.Distance*float64(c.Shape.Width())), c.Shape.Top())
	case geo.SideRight:
		return geo.Pt(c.Shape.Right(), c.Shape.Top()+int(c.Distance*float64(c.Shape.Height())))
	case geo.SideBottom:
		return geo.Pt(c.Shape.Left()+int(c.Distance*float64(c.Shape.Width())), c.Shape.Bottom())
	default:
		return geo.Pt(c.Shape.Left(), c.Shape.Top()+int(c.Distance*float64(c.Shape.Height())))
	}
}

// Antenna returns the resolved location extruded outward by margin,
// perpendicular to the attachment side. A path leaving a shape with a
// positive clearance margin must first cross its own clearance annulus;
// the antenna is the point just outside it where the graph search starts
// or ends. With a zero margin the antenna equals the resolved location.
func (c ConnectorPoint) Antenna(margin int) geo.Point {
	return c.Side.Outward().Translate(c.Location(), margin)
}

// validate checks the connector point's own invariants.
func (c ConnectorPoint) validate(name string) error {
	if !c.Side.Valid() {
		return fmt.Errorf("%w: %s: unknown side %d", ErrInvalidConfig, name, int(c.Side))
	}
	if c.Distance < 0 || c.Distance > 1 {
		return fmt.Errorf("%w: %s: distance %v outside [0, 1]", ErrInvalidConfig, name, c.Distance)
	}
	if c.Shape.Width() < 0 || c.Shape.Height() < 0 {
		return fmt.Errorf("%w: %s: negative shape size %dx%d", ErrInvalidConfig, name, c.Shape.Width(), c.Shape.Height())
	}
	return nil
}
