package router

import "github.com/routekit/elbow/pkg/geo"

// pointGraph is the routing graph: a dense node arena of unique points,
// a coordinate-to-index intern map, and per-node adjacency lists whose
// edges reference nodes by index. It is rebuilt from scratch for every
// request and discarded once the path is extracted.
type pointGraph struct {
	points []geo.Point
	index  map[geo.Point]int
	adj    [][]graphEdge
}

// graphEdge is one directed half of an undirected routing edge.
type graphEdge struct {
	to     int
	weight float64
	axis   geo.Direction // horizontal or vertical, never other
}

func newPointGraph(hint int) *pointGraph {
	return &pointGraph{
		points: make([]geo.Point, 0, hint),
		index:  make(map[geo.Point]int, hint),
		adj:    make([][]graphEdge, 0, hint),
	}
}

// add interns p, returning its node index. Adding an existing point
// returns the original index, so self-loops cannot arise downstream.
func (g *pointGraph) add(p geo.Point) int {
	if idx, ok := g.index[p]; ok {
		return idx
	}
	idx := len(g.points)
	g.points = append(g.points, p)
	g.adj = append(g.adj, nil)
	g.index[p] = idx
	return idx
}

// node returns the index of an interned point.
func (g *pointGraph) node(p geo.Point) (int, bool) {
	idx, ok := g.index[p]
	return idx, ok
}

// at returns the point stored at node index idx.
func (g *pointGraph) at(idx int) geo.Point { return g.points[idx] }

// connect adds the reciprocal edge pair between nodes a and b, weighted
// by Euclidean distance.
func (g *pointGraph) connect(a, b int) {
	weight := geo.Distance(g.points[a], g.points[b])
	axis := geo.DirectionOf(g.points[a], g.points[b])
	g.adj[a] = append(g.adj[a], graphEdge{to: b, weight: weight, axis: axis})
	g.adj[b] = append(g.adj[b], graphEdge{to: a, weight: weight, axis: axis})
}

// buildGraph interns every spot and connects each axis-aligned spot pair
// whose joining segment stays clear of the obstacles. The segment is
// treated as a degenerate rectangle under the open-interval intersection
// test: running along an obstacle's boundary is allowed, cutting through
// its interior is not. Diagonal pairs never get an edge, which is what
// makes every searched path orthogonal by construction.
//
// Spots arrive sorted, and pairs are visited in ascending index order, so
// edge insertion order is deterministic.
func buildGraph(spots []geo.Point, obstacles ...geo.Rect) *pointGraph {
	g := newPointGraph(len(spots))
	for _, p := range spots {
		g.add(p)
	}

	for i := 0; i < len(spots); i++ {
		for j := i + 1; j < len(spots); j++ {
			if geo.DirectionOf(spots[i], spots[j]) == geo.DirectionOther {
				continue
			}
			segment := geo.RectFromPoints(spots[i], spots[j])
			if blocked(segment, obstacles) {
				continue
			}
			g.connect(i, j)
		}
	}
	return g
}
