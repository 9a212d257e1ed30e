package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/routekit/elbow/pkg/router"
)

// ToDOT converts a routing byproduct to Graphviz DOT format. Path
// waypoints become pinned nodes at their grid coordinates and the
// connector segments become edges, so the rendered diagram reproduces the
// routed geometry. The resulting DOT string can be rendered with
// [DOTToSVG] or [DOTToPNG].
func ToDOT(bp *router.Byproduct) string {
	var buf bytes.Buffer
	buf.WriteString("graph route {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.08, color=\"#2563eb\"];\n")
	buf.WriteString("  edge [color=\"#2563eb\", penwidth=2];\n")
	buf.WriteString("\n")

	// Graphviz Y grows upward, grid Y grows downward.
	points := bp.Path()
	for i, p := range points {
		fmt.Fprintf(&buf, "  p%d [pos=\"%d,%d!\", xlabel=\"(%d,%d)\"];\n", i, p.X, -p.Y, p.X, p.Y)
	}

	buf.WriteString("\n")
	for i := 1; i < len(points); i++ {
		fmt.Fprintf(&buf, "  p%d -- p%d;\n", i-1, i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// DOTToSVG renders a DOT graph to SVG using Graphviz.
func DOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// DOTToPNG renders a DOT graph to PNG using Graphviz.
func DOTToPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
