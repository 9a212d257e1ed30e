package router_test

import (
	"fmt"

	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/router"
)

// Two 100x100 boxes side by side, connected mid-side to mid-side. The
// points are directly aligned and the gap is obstacle-free, so the route
// is a single straight segment.
func ExampleRoute() {
	boxA := geo.Rect{Origin: geo.Pt(0, 0), Size: geo.Size{Width: 100, Height: 100}}
	boxB := geo.Rect{Origin: geo.Pt(300, 0), Size: geo.Size{Width: 100, Height: 100}}

	bp, err := router.Route(router.Options{
		PointA:      router.ConnectorPoint{Shape: boxA, Side: geo.SideRight, Distance: 0.5},
		PointB:      router.ConnectorPoint{Shape: boxB, Side: geo.SideLeft, Distance: 0.5},
		ShapeMargin: 10,
	})
	if err != nil {
		fmt.Println("route failed:", err)
		return
	}

	for _, l := range bp.Connections {
		fmt.Printf("(%d,%d) -> (%d,%d)\n", l.A.X, l.A.Y, l.B.X, l.B.Y)
	}
	// Output:
	// (100,50) -> (300,50)
}
