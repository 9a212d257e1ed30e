// Package pkg provides the core libraries for elbow connector routing.
//
// # Overview
//
// Elbow computes orthogonal (right-angle) connector paths between
// rectangular shapes, keeping a clearance margin around every shape. The
// pkg directory is organized into five main areas:
//
//  1. [geo] - Integer-grid geometry primitives (points, rectangles, sides)
//  2. [router] - The routing core (rulers, grid, waypoint graph, search)
//  3. [scenario] - TOML/JSON codecs for requests and results
//  4. [pipeline] - Orchestration with caching (shared by CLI and API)
//  5. [render] - SVG and Graphviz DOT output
//
// # Architecture
//
// The typical data flow through elbow:
//
//	Scenario file / API request
//	         ↓
//	    [scenario] package (decode into routing options)
//	         ↓
//	    [router] package (rulers → grid → spots → graph → search)
//	         ↓
//	    [render] package (SVG / DOT output)
//
// # Quick Start
//
// Route a connector between two shapes and render it:
//
//	import (
//	    "github.com/routekit/elbow/pkg/geo"
//	    "github.com/routekit/elbow/pkg/render"
//	    "github.com/routekit/elbow/pkg/router"
//	)
//
//	bp, err := router.Route(router.Options{
//	    PointA:      router.ConnectorPoint{Shape: geo.RectFromLTRB(0, 0, 100, 100), Side: geo.SideRight, Distance: 0.5},
//	    PointB:      router.ConnectorPoint{Shape: geo.RectFromLTRB(300, 0, 400, 100), Side: geo.SideLeft, Distance: 0.5},
//	    ShapeMargin: 10,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := render.SVG(bp)
//
// [geo]: github.com/routekit/elbow/pkg/geo
// [router]: github.com/routekit/elbow/pkg/router
// [scenario]: github.com/routekit/elbow/pkg/scenario
// [pipeline]: github.com/routekit/elbow/pkg/pipeline
// [render]: github.com/routekit/elbow/pkg/render
package pkg
