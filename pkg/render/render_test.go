package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
)

func routedByproduct(t *testing.T) (*router.Byproduct, router.Options) {
	t.Helper()
	opts := router.Options{
		PointA:      router.ConnectorPoint{Shape: geo.RectFromLTRB(0, 0, 100, 100), Side: geo.SideRight, Distance: 0.5},
		PointB:      router.ConnectorPoint{Shape: geo.RectFromLTRB(300, 200, 400, 300), Side: geo.SideLeft, Distance: 0.5},
		ShapeMargin: 10,
	}
	bp, err := router.Route(opts)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	return bp, opts
}

func TestSVG(t *testing.T) {
	bp, opts := routedByproduct(t)

	svg := SVG(bp, WithShapes(opts.PointA.Shape, opts.PointB.Shape))
	if !bytes.HasPrefix(svg, []byte("<svg ")) {
		t.Fatalf("missing svg prefix: %.40s", svg)
	}
	if !bytes.HasSuffix(bytes.TrimSpace(svg), []byte("</svg>")) {
		t.Fatal("missing closing tag")
	}

	out := string(svg)
	if got := strings.Count(out, "<rect "); got != 2 {
		t.Errorf("shape rects = %d, want 2", got)
	}
	if !strings.Contains(out, `<path d="M `) {
		t.Error("missing connector path")
	}
	// The path starts at the first connection endpoint.
	start := bp.Connections[0].A
	if !strings.Contains(out, fmt.Sprintf(`d="M %d %d`, start.X, start.Y)) {
		t.Errorf("path does not start at %v", start)
	}
	// Debug layers are opt-in.
	if strings.Contains(out, "stroke-dasharray") {
		t.Error("rulers drawn without WithRulers")
	}
}

func TestSVGDebugLayers(t *testing.T) {
	bp, _ := routedByproduct(t)

	out := string(SVG(bp, WithRulers(), WithGrid(), WithSpots()))
	if got := strings.Count(out, "stroke-dasharray"); got != len(bp.HRulers)+len(bp.VRulers) {
		t.Errorf("ruler lines = %d, want %d", got, len(bp.HRulers)+len(bp.VRulers))
	}
	if got := strings.Count(out, `fill="none" stroke="`+gridColor); got != len(bp.Grid) {
		t.Errorf("grid rects = %d, want %d", got, len(bp.Grid))
	}
	if got := strings.Count(out, `r="2"`); got != len(bp.Spots) {
		t.Errorf("spot markers = %d, want %d", got, len(bp.Spots))
	}
}

func TestSVGEmptyByproduct(t *testing.T) {
	svg := SVG(&router.Byproduct{})
	if !bytes.HasPrefix(svg, []byte("<svg ")) {
		t.Fatal("empty byproduct must still produce a document")
	}
}

func TestToDOT(t *testing.T) {
	bp, _ := routedByproduct(t)

	dot := ToDOT(bp)
	if !strings.HasPrefix(dot, "graph route {") {
		t.Fatalf("unexpected prefix: %.30s", dot)
	}
	points := bp.Path()
	for i, p := range points {
		want := fmt.Sprintf("p%d [pos=\"%d,%d!\"", i, p.X, -p.Y)
		if !strings.Contains(dot, want) {
			t.Errorf("missing node %s", want)
		}
	}
	if got := strings.Count(dot, " -- "); got != len(points)-1 {
		t.Errorf("edges = %d, want %d", got, len(points)-1)
	}
}

func TestDOTToSVG(t *testing.T) {
	bp, _ := routedByproduct(t)

	svg, err := DOTToSVG(context.Background(), ToDOT(bp))
	if err != nil {
		t.Fatalf("DOTToSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatalf("not an svg document: %.60s", svg)
	}
}

func TestDOTToPNG(t *testing.T) {
	bp, _ := routedByproduct(t)

	png, err := DOTToPNG(context.Background(), ToDOT(bp))
	if err != nil {
		t.Fatalf("DOTToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("missing png signature")
	}
}

func TestRenderDOTInvalid(t *testing.T) {
	if _, err := DOTToSVG(context.Background(), "graph {"); err == nil {
		t.Fatal("expected an error for malformed dot input")
	}
}
