package routing

import (
	"testing"

	"panel-router/pkg/geometry"
)

// cellCenter returns the world center of a grid cell for test setup.
func cellCenter(g *Grid, x, y, z int) geometry.Point3D {
	return g.CellCenter(geometry.GridIndex{X: x, Y: y, Z: z})
}

// pathCells walks a reduced waypoint list segment by segment and returns
// every grid cell the path passes through.
func pathCells(g *Grid, waypoints []geometry.Point3D) []geometry.GridIndex {
	var cells []geometry.GridIndex
	for i := 0; i < len(waypoints)-1; i++ {
		a := g.CellOf(waypoints[i])
		b := g.CellOf(waypoints[i+1])
		step := geometry.GridIndex{X: signInt(b.X - a.X), Y: signInt(b.Y - a.Y), Z: signInt(b.Z - a.Z)}
		for c := a; c != b; c = (geometry.GridIndex{X: c.X + step.X, Y: c.Y + step.Y, Z: c.Z + step.Z}) {
			cells = append(cells, c)
		}
	}
	if len(waypoints) > 0 {
		cells = append(cells, g.CellOf(waypoints[len(waypoints)-1]))
	}
	return cells
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestFindPathStraightLineOptimal(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	// Empty grid, start (0,0,0), end (3,0,0): the optimal path is 3 steps
	// and reduces to exactly 2 waypoints.
	res := FindPath(g, cellCenter(g, 0, 0, 0), cellCenter(g, 3, 0, 0), 0)
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}
	if len(res.Waypoints) != 2 {
		t.Fatalf("waypoints = %d, want 2 after reduction: %v", len(res.Waypoints), res.Waypoints)
	}

	steps := len(pathCells(g, res.Waypoints)) - 1
	if steps != 3 {
		t.Errorf("path length = %d steps, want 3", steps)
	}
}

func TestFindPathManhattanOptimality(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	start := geometry.GridIndex{X: 2, Y: 3, Z: 1}
	end := geometry.GridIndex{X: 10, Y: 8, Z: 5}
	res := FindPath(g, g.CellCenter(start), g.CellCenter(end), 0)
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}

	steps := len(pathCells(g, res.Waypoints)) - 1
	if want := start.Manhattan(end); steps != want {
		t.Errorf("path length = %d steps, want Manhattan distance %d", steps, want)
	}
}

func TestFindPathDetoursAroundObstacle(t *testing.T) {
	// Enclosure 800x600x200mm at 10mm resolution, one blocking component
	// spanning grid x in [5,15], y in [0,5], z in [0,5].
	obstacle := Obstacle{
		Position: geometry.NewPoint3D(50, 0, 0),
		Size:     geometry.NewSize3D(100, 50, 50),
	}
	g, err := BuildGrid(testEnclosure(), []Obstacle{obstacle}, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	start := cellCenter(g, 0, 2, 2)
	end := cellCenter(g, 20, 2, 2)
	res := FindPath(g, start, end, 0)
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}

	// Soundness: no cell on the returned path is blocked.
	for _, c := range pathCells(g, res.Waypoints) {
		if g.Blocked(c) {
			t.Fatalf("path passes through blocked cell %+v", c)
		}
	}

	// The path must actually detour: longer than the unobstructed distance.
	steps := len(pathCells(g, res.Waypoints)) - 1
	if steps <= 20 {
		t.Errorf("path length = %d steps; expected a detour longer than 20", steps)
	}
}

func TestFindPathOutOfBounds(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	tests := []struct {
		name       string
		start, end geometry.Point3D
	}{
		{"start outside", geometry.NewPoint3D(-5, 10, 10), cellCenter(g, 3, 3, 3)},
		{"end outside", cellCenter(g, 3, 3, 3), geometry.NewPoint3D(10, 700, 10)},
		{"both outside", geometry.NewPoint3D(-5, -5, -5), geometry.NewPoint3D(900, 900, 900)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FindPath(g, tt.start, tt.end, 0)
			if res.Status != StatusOutOfBounds {
				t.Errorf("status = %v, want StatusOutOfBounds", res.Status)
			}
			if len(res.Waypoints) != 0 {
				t.Errorf("unexpected waypoints on out-of-bounds search: %v", res.Waypoints)
			}
		})
	}
}

func TestFindPathNoPath(t *testing.T) {
	// Wall off the entire yz cross-section between start and end.
	wall := Obstacle{
		Position: geometry.NewPoint3D(100, 0, 0),
		Size:     geometry.NewSize3D(20, 600, 200),
	}
	g, err := BuildGrid(testEnclosure(), []Obstacle{wall}, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	res := FindPath(g, cellCenter(g, 2, 30, 10), cellCenter(g, 60, 30, 10), 0)
	if res.Status != StatusNoPath {
		t.Errorf("status = %v, want StatusNoPath", res.Status)
	}
}

func TestFindPathSearchLimit(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	res := FindPath(g, cellCenter(g, 0, 0, 0), cellCenter(g, 79, 59, 19), 10)
	if res.Status != StatusSearchLimitExceeded {
		t.Errorf("status = %v, want StatusSearchLimitExceeded", res.Status)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	obstacle := Obstacle{
		Position: geometry.NewPoint3D(200, 100, 0),
		Size:     geometry.NewSize3D(60, 300, 120),
	}
	g, err := BuildGrid(testEnclosure(), []Obstacle{obstacle}, 10, 5)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	start := cellCenter(g, 5, 25, 5)
	end := cellCenter(g, 50, 25, 5)

	first := FindPath(g, start, end, 0)
	if !first.Routed() {
		t.Fatalf("status = %v", first.Status)
	}
	for i := 0; i < 5; i++ {
		again := FindPath(g, start, end, 0)
		if !again.Routed() {
			t.Fatalf("rerun status = %v", again.Status)
		}
		if len(again.Waypoints) != len(first.Waypoints) {
			t.Fatalf("rerun produced %d waypoints, first run %d", len(again.Waypoints), len(first.Waypoints))
		}
		for j := range again.Waypoints {
			if again.Waypoints[j] != first.Waypoints[j] {
				t.Fatalf("waypoint %d differs across reruns: %+v vs %+v", j, again.Waypoints[j], first.Waypoints[j])
			}
		}
	}
}

func TestFindPathSameCell(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	p := cellCenter(g, 4, 4, 4)
	res := FindPath(g, p, p.Add(geometry.NewPoint3D(1, 1, 1)), 0)
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}
	if len(res.Waypoints) != 1 {
		t.Errorf("same-cell search returned %d waypoints, want 1", len(res.Waypoints))
	}
}

func TestFindPathBlockedTerminalsArePassable(t *testing.T) {
	// Both terminals sit inside an obstacle footprint (pins on a component
	// surface); the route must still escape and land.
	obstacleA := Obstacle{Position: geometry.NewPoint3D(40, 40, 0), Size: geometry.NewSize3D(30, 30, 30)}
	obstacleB := Obstacle{Position: geometry.NewPoint3D(300, 40, 0), Size: geometry.NewSize3D(30, 30, 30)}
	g, err := BuildGrid(testEnclosure(), []Obstacle{obstacleA, obstacleB}, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	start := geometry.NewPoint3D(55, 45, 15)
	end := geometry.NewPoint3D(315, 45, 15)
	if !g.Blocked(g.CellOf(start)) || !g.Blocked(g.CellOf(end)) {
		t.Fatal("test setup: terminals should be inside blocked cells")
	}

	res := FindPath(g, start, end, 0)
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}
}

func TestReduceCollinear(t *testing.T) {
	p := func(x, y, z float64) geometry.Point3D { return geometry.NewPoint3D(x, y, z) }

	tests := []struct {
		name string
		in   []geometry.Point3D
		want int
	}{
		{"empty", nil, 0},
		{"single", []geometry.Point3D{p(0, 0, 0)}, 1},
		{"pair", []geometry.Point3D{p(0, 0, 0), p(1, 0, 0)}, 2},
		{"straight run collapses", []geometry.Point3D{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(3, 0, 0)}, 2},
		{"single corner kept", []geometry.Point3D{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(2, 1, 0), p(2, 2, 0)}, 3},
		{"zigzag keeps all corners", []geometry.Point3D{p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(2, 1, 0), p(2, 1, 1)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceCollinear(tt.in)
			if len(got) != tt.want {
				t.Errorf("reduceCollinear kept %d points, want %d: %v", len(got), tt.want, got)
			}
		})
	}
}
