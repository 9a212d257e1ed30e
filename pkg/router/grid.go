package router

import "github.com/routekit/elbow/pkg/geo"

// buildGrid intersects consecutive ruler pairs into candidate cells and
// keeps the obstacle-free ones. Cells are formed row-major (y band outer,
// x band inner) so the byproduct order is deterministic.
//
// A cell is excluded iff it open-intersects an obstacle: cells that merely
// touch an inflated shape's edge stay routable, which is what lets paths
// run along margined bounds without cutting through them. Growing the
// margin grows the inflations monotonically, so the excluded set can only
// grow with it.
func buildGrid(hRulers, vRulers []int, obstacles ...geo.Rect) []geo.Rect {
	var cells []geo.Rect
	for j := 0; j+1 < len(hRulers); j++ {
		for i := 0; i+1 < len(vRulers); i++ {
			cell := geo.RectFromLTRB(vRulers[i], hRulers[j], vRulers[i+1], hRulers[j+1])
			if blocked(cell, obstacles) {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

func blocked(cell geo.Rect, obstacles []geo.Rect) bool {
	for _, o := range obstacles {
		if cell.Intersects(o) {
			return true
		}
	}
	return false
}
