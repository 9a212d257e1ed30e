// Package render turns routing byproducts into visual outputs: a native
// SVG renderer for the connector path and its construction stages, and a
// Graphviz DOT view of the waypoint graph.
package render

import (
	"bytes"
	"fmt"

	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
)

const (
	pathColor  = "#2563eb"
	shapeFill  = "#f1f5f9"
	shapeLine  = "#475569"
	rulerColor = "#e2e8f0"
	gridColor  = "#cbd5e1"
	spotColor  = "#94a3b8"
)

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	shapes     []geo.Rect
	showRulers bool
	showGrid   bool
	showSpots  bool
	padding    int
}

// WithShapes draws the connected shapes under the path.
func WithShapes(shapes ...geo.Rect) SVGOption {
	return func(r *svgRenderer) { r.shapes = append(r.shapes, shapes...) }
}

// WithRulers draws the ruler lines the grid was built from.
func WithRulers() SVGOption { return func(r *svgRenderer) { r.showRulers = true } }

// WithGrid draws the grid cell outlines.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.showGrid = true } }

// WithSpots draws the candidate waypoints.
func WithSpots() SVGOption { return func(r *svgRenderer) { r.showSpots = true } }

// WithPadding sets the whitespace around the drawing (default 20).
func WithPadding(p int) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// SVG renders a routing byproduct as a standalone SVG document.
//
// By default only the shapes and the connector path are drawn; the
// construction stages (rulers, grid, spots) are opt-in so debug views and
// clean presentation views share one renderer.
func SVG(bp *router.Byproduct, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	frame := r.frame(bp)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d">`+"\n",
		frame.Left(), frame.Top(), frame.Width(), frame.Height(), frame.Width(), frame.Height())

	if r.showRulers {
		r.renderRulers(&buf, bp, frame)
	}
	if r.showGrid {
		r.renderGrid(&buf, bp)
	}
	r.renderShapes(&buf)
	if r.showSpots {
		r.renderSpots(&buf, bp)
	}
	r.renderPath(&buf, bp)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{padding: 20}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// frame computes the drawing envelope: everything the byproduct touches
// plus the configured padding.
func (r *svgRenderer) frame(bp *router.Byproduct) geo.Rect {
	var frame geo.Rect
	first := true
	extend := func(rect geo.Rect) {
		if first {
			frame, first = rect, false
			return
		}
		frame = frame.Union(rect)
	}

	for _, s := range r.shapes {
		extend(s)
	}
	for _, cell := range bp.Grid {
		extend(cell)
	}
	for _, l := range bp.Connections {
		extend(geo.RectFromPoints(l.A, l.B))
	}
	if first {
		frame = geo.RectFromLTRB(0, 0, 1, 1)
	}
	return frame.Inflate(r.padding, r.padding)
}

func (r *svgRenderer) renderRulers(buf *bytes.Buffer, bp *router.Byproduct, frame geo.Rect) {
	for _, y := range bp.HRulers {
		fmt.Fprintf(buf, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			frame.Left(), y, frame.Right(), y, rulerColor)
	}
	for _, x := range bp.VRulers {
		fmt.Fprintf(buf, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			x, frame.Top(), x, frame.Bottom(), rulerColor)
	}
}

func (r *svgRenderer) renderGrid(buf *bytes.Buffer, bp *router.Byproduct) {
	for _, cell := range bp.Grid {
		fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s"/>`+"\n",
			cell.Left(), cell.Top(), cell.Width(), cell.Height(), gridColor)
	}
}

func (r *svgRenderer) renderShapes(buf *bytes.Buffer) {
	for _, s := range r.shapes {
		fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			s.Left(), s.Top(), s.Width(), s.Height(), shapeFill, shapeLine)
	}
}

func (r *svgRenderer) renderSpots(buf *bytes.Buffer, bp *router.Byproduct) {
	for _, p := range bp.Spots {
		fmt.Fprintf(buf, `  <circle cx="%d" cy="%d" r="2" fill="%s"/>`+"\n", p.X, p.Y, spotColor)
	}
}

func (r *svgRenderer) renderPath(buf *bytes.Buffer, bp *router.Byproduct) {
	points := bp.Path()
	if len(points) == 0 {
		return
	}
	var d bytes.Buffer
	fmt.Fprintf(&d, "M %d %d", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&d, " L %d %d", p.X, p.Y)
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round"/>`+"\n",
		d.String(), pathColor)
	for _, p := range []geo.Point{points[0], points[len(points)-1]} {
		fmt.Fprintf(buf, `  <circle cx="%d" cy="%d" r="4" fill="%s"/>`+"\n", p.X, p.Y, pathColor)
	}
}
