package routing

import (
	"container/heap"

	"panel-router/pkg/geometry"
)

// DefaultMaxExpanded bounds the number of node expansions per search so a
// pathological grid terminates instead of hanging.
const DefaultMaxExpanded = 200000

// FindPath runs A* over the grid between two world-space points and returns
// a tagged result. The search uses uniform step cost, the Manhattan distance
// heuristic, and the six axis-aligned neighbor directions, which yields
// optimal orthogonal (Manhattan) wire runs on a uniform grid.
//
// The cells containing the start and end points are treated as passable even
// when blocked: terminals sit on the surface of their own component's padded
// footprint, which would otherwise wall them in.
//
// maxExpanded caps node expansions; values <= 0 select DefaultMaxExpanded.
func FindPath(g *Grid, startWorld, endWorld geometry.Point3D, maxExpanded int) PathResult {
	if maxExpanded <= 0 {
		maxExpanded = DefaultMaxExpanded
	}

	start := g.CellOf(startWorld)
	end := g.CellOf(endWorld)
	if !g.InBounds(start) || !g.InBounds(end) {
		return PathResult{Status: StatusOutOfBounds}
	}

	startIdx := g.Index(start)
	endIdx := g.Index(end)
	if startIdx == endIdx {
		return PathResult{
			Status:    StatusRouted,
			Waypoints: []geometry.Point3D{g.CellCenter(start)},
		}
	}

	n := g.CellCount()
	gScore := make([]int32, n)
	parent := make([]int32, n)
	closed := make([]bool, n)
	inOpen := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}

	pq := &nodeQueue{}
	heap.Init(pq)
	push := func(idx int, f int32) {
		heap.Push(pq, &searchNode{idx: idx, f: f})
		inOpen[idx] = true
	}
	push(startIdx, int32(start.Manhattan(end)))

	expanded := 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*searchNode)
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		if cur.idx == endIdx {
			return PathResult{
				Status:    StatusRouted,
				Waypoints: reconstruct(g, parent, startIdx, endIdx),
				Expanded:  expanded,
			}
		}

		expanded++
		if expanded > maxExpanded {
			return PathResult{Status: StatusSearchLimitExceeded, Expanded: expanded}
		}

		c := g.Coord(cur.idx)
		curG := gScore[cur.idx]

		for _, d := range neighborDirs {
			nc := geometry.GridIndex{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
			if !g.InBounds(nc) {
				continue
			}
			ni := g.Index(nc)
			if closed[ni] {
				continue
			}
			// Blocked cells are impassable except the two terminals.
			if g.blocked[ni] && ni != endIdx && ni != startIdx {
				continue
			}

			tentative := curG + 1
			if inOpen[ni] && tentative >= gScore[ni] {
				continue
			}
			gScore[ni] = tentative
			parent[ni] = int32(cur.idx)
			push(ni, tentative+int32(nc.Manhattan(end)))
		}
	}

	return PathResult{Status: StatusNoPath, Expanded: expanded}
}

// neighborDirs are the six axis-aligned directions. Restricting expansion to
// these produces orthogonal wiring with no diagonal runs.
var neighborDirs = [6]geometry.GridIndex{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// reconstruct walks parent indices from goal back to start, reverses the
// cell chain into start-to-goal order, converts to world cell centers, and
// drops redundant collinear interior points.
func reconstruct(g *Grid, parent []int32, startIdx, endIdx int) []geometry.Point3D {
	var cells []geometry.GridIndex
	for i := endIdx; ; i = int(parent[i]) {
		cells = append(cells, g.Coord(i))
		if i == startIdx {
			break
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	points := make([]geometry.Point3D, len(cells))
	for i, c := range cells {
		points[i] = g.CellCenter(c)
	}
	return reduceCollinear(points)
}

// reduceCollinear keeps the first point, the last point, and every interior
// point where the incoming and outgoing directions differ. Since grid paths
// are axis-aligned, exact direction comparison removes all redundant points
// without changing the path geometry.
func reduceCollinear(points []geometry.Point3D) []geometry.Point3D {
	if len(points) <= 2 {
		return points
	}
	out := []geometry.Point3D{points[0]}
	for i := 1; i < len(points)-1; i++ {
		in := direction(points[i-1], points[i])
		outDir := direction(points[i], points[i+1])
		if in != outDir {
			out = append(out, points[i])
		}
	}
	return append(out, points[len(points)-1])
}

// direction returns the unit step sign vector between two adjacent waypoints.
func direction(a, b geometry.Point3D) geometry.GridIndex {
	return geometry.GridIndex{X: sign(b.X - a.X), Y: sign(b.Y - a.Y), Z: sign(b.Z - a.Z)}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// searchNode is an entry in the A* priority queue.
type searchNode struct {
	idx   int
	f     int32
	seq   int64
	index int
}

// nodeQueue implements heap.Interface. Ties on total cost prefer the most
// recently pushed node (larger sequence number), making search order, and
// therefore the returned path, fully deterministic.
type nodeQueue struct {
	items []*searchNode
	seq   int64
}

func (pq *nodeQueue) Len() int { return len(pq.items) }

func (pq *nodeQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq > b.seq
}

func (pq *nodeQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index = i
	pq.items[j].index = j
}

func (pq *nodeQueue) Push(x interface{}) {
	item := x.(*searchNode)
	pq.seq++
	item.seq = pq.seq
	item.index = len(pq.items)
	pq.items = append(pq.items, item)
}

func (pq *nodeQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	pq.items = old[:n-1]
	return item
}
