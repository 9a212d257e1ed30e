package router

import (
	"container/heap"
	"slices"

	"github.com/routekit/elbow/pkg/geo"
)

// The pathfinder is a Dijkstra search over (node, entry axis) states with
// lexicographic cost: total length first, then number of bends. Plain
// length-only Dijkstra would pick arbitrarily among the many equal-length
// orthogonal staircases; minimizing bends as a secondary criterion makes
// the result the minimal-bend polyline among shortest paths and keeps it
// deterministic. Remaining ties break on insertion sequence.

// searchKey identifies a Dijkstra state: a node plus the axis of the edge
// used to enter it. The source enters with DirectionOther (no axis yet).
type searchKey struct {
	node int
	axis geo.Direction
}

type searchState struct {
	key   searchKey
	dist  float64
	bends int
	seq   int
}

func (s searchState) less(o searchState) bool {
	if s.dist != o.dist {
		return s.dist < o.dist
	}
	if s.bends != o.bends {
		return s.bends < o.bends
	}
	return s.seq < o.seq
}

// shortestPath returns the node indices of the cheapest path from src to
// dst, inclusive of both, or nil when dst is unreachable.
func shortestPath(g *pointGraph, src, dst int) []int {
	if src == dst {
		return []int{src}
	}

	best := make(map[searchKey]searchState)
	parent := make(map[searchKey]searchKey)
	visited := make(map[searchKey]bool)

	pq := &stateQueue{}
	heap.Init(pq)

	start := searchState{key: searchKey{node: src, axis: geo.DirectionOther}}
	best[start.key] = start
	heap.Push(pq, start)

	seq := 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(searchState)
		if visited[cur.key] {
			continue
		}
		visited[cur.key] = true

		if cur.key.node == dst {
			return reconstruct(parent, cur.key, src)
		}

		for _, e := range g.adj[cur.key.node] {
			bends := cur.bends
			if cur.key.axis != geo.DirectionOther && e.axis != cur.key.axis {
				bends++
			}

			seq++
			next := searchState{
				key:   searchKey{node: e.to, axis: e.axis},
				dist:  cur.dist + e.weight,
				bends: bends,
				seq:   seq,
			}
			if visited[next.key] {
				continue
			}
			if b, ok := best[next.key]; ok && !next.less(b) {
				continue
			}
			best[next.key] = next
			parent[next.key] = cur.key
			heap.Push(pq, next)
		}
	}
	return nil
}

// reconstruct traces parent links back from the terminal state to src.
func reconstruct(parent map[searchKey]searchKey, end searchKey, src int) []int {
	path := []int{end.node}
	cur := end
	for cur.node != src {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
		path = append(path, cur.node)
	}
	slices.Reverse(path)
	return path
}

// stateQueue is a priority queue of search states ordered by less.
type stateQueue []searchState

func (q stateQueue) Len() int { return len(q) }

func (q stateQueue) Less(i, j int) bool { return q[i].less(q[j]) }

func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stateQueue) Push(x any) { *q = append(*q, x.(searchState)) }

func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
