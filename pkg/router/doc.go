// Package router computes orthogonal connector paths between two
// rectangular shapes: polylines made only of horizontal and vertical
// segments, joining a designated boundary point on one shape to a
// designated boundary point on the other, while keeping a configurable
// clearance margin around both shapes and optionally staying inside a
// global bounding region.
//
// The engine runs six stages per request, strictly in order: ruler
// generation, grid construction, spot extraction, routing-graph
// construction, shortest-path search, and path simplification. The result
// is the final polyline plus the intermediate geometry (rulers, grid
// cells, spots) as a diagnostic byproduct.
//
// A single call does everything:
//
//	bp, err := router.Route(router.Options{
//	    PointA:      router.ConnectorPoint{Shape: boxA, Side: geo.SideRight, Distance: 0.5},
//	    PointB:      router.ConnectorPoint{Shape: boxB, Side: geo.SideLeft, Distance: 0.5},
//	    ShapeMargin: 10,
//	})
//
// Route is a pure function of its options: it holds no state between
// calls, allocates everything fresh, and is safe to invoke from any
// number of goroutines simultaneously.
package router
