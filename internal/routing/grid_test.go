package routing

import (
	"testing"

	"panel-router/internal/enclosure"
	"panel-router/pkg/geometry"
)

func testEnclosure() *enclosure.Enclosure {
	return &enclosure.Enclosure{Width: 800, Height: 600, Depth: 200}
}

func TestBuildGridDimensions(t *testing.T) {
	g, err := BuildGrid(testEnclosure(), nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if g.NX != 80 || g.NY != 60 || g.NZ != 20 {
		t.Errorf("grid dims = %dx%dx%d, want 80x60x20", g.NX, g.NY, g.NZ)
	}
	if g.CellCount() != 80*60*20 {
		t.Errorf("CellCount = %d", g.CellCount())
	}

	// Non-divisible dimensions round up.
	g, err = BuildGrid(&enclosure.Enclosure{Width: 95, Height: 95, Depth: 95}, nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if g.NX != 10 || g.NY != 10 || g.NZ != 10 {
		t.Errorf("grid dims = %dx%dx%d, want 10x10x10", g.NX, g.NY, g.NZ)
	}
}

func TestBuildGridInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		enc  *enclosure.Enclosure
		res  float64
	}{
		{"zero resolution", testEnclosure(), 0},
		{"negative resolution", testEnclosure(), -5},
		{"nil enclosure", nil, 10},
		{"zero width", &enclosure.Enclosure{Width: 0, Height: 600, Depth: 200}, 10},
		{"negative depth", &enclosure.Enclosure{Width: 800, Height: 600, Depth: -1}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildGrid(tt.enc, nil, tt.res, 0); err != ErrInvalidGridParameters {
				t.Errorf("error = %v, want ErrInvalidGridParameters", err)
			}
		})
	}
}

func TestGridBlocking(t *testing.T) {
	obstacles := []Obstacle{{
		Position: geometry.NewPoint3D(100, 100, 0),
		Size:     geometry.NewSize3D(50, 50, 50),
	}}

	g, err := BuildGrid(testEnclosure(), obstacles, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	if !g.Blocked(geometry.GridIndex{X: 12, Y: 12, Z: 2}) {
		t.Error("cell inside obstacle not blocked")
	}
	if g.Blocked(geometry.GridIndex{X: 30, Y: 30, Z: 10}) {
		t.Error("cell far from obstacle is blocked")
	}
}

func TestGridClearancePadding(t *testing.T) {
	obstacles := []Obstacle{{
		Position: geometry.NewPoint3D(100, 100, 50),
		Size:     geometry.NewSize3D(20, 20, 20),
	}}

	bare, err := BuildGrid(testEnclosure(), obstacles, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	padded, err := BuildGrid(testEnclosure(), obstacles, 10, 15)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	// A cell 15mm clear of the obstacle is free on the bare grid but blocked
	// on the padded one.
	near := geometry.GridIndex{X: 8, Y: 10, Z: 5}
	if bare.Blocked(near) {
		t.Error("cell blocked without clearance")
	}
	if !padded.Blocked(near) {
		t.Error("cell not blocked with clearance margin")
	}
}

func TestGridOrderIndependence(t *testing.T) {
	a := Obstacle{Position: geometry.NewPoint3D(50, 50, 0), Size: geometry.NewSize3D(100, 100, 60)}
	b := Obstacle{Position: geometry.NewPoint3D(120, 120, 30), Size: geometry.NewSize3D(100, 100, 60)}
	c := Obstacle{Position: geometry.NewPoint3D(400, 300, 100), Size: geometry.NewSize3D(40, 40, 40)}

	g1, err := BuildGrid(testEnclosure(), []Obstacle{a, b, c}, 10, 5)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	g2, err := BuildGrid(testEnclosure(), []Obstacle{c, b, a}, 10, 5)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	for i := 0; i < g1.CellCount(); i++ {
		if g1.blocked[i] != g2.blocked[i] {
			t.Fatalf("blocked state differs at cell %v", g1.Coord(i))
		}
	}
}

func TestIndexCoordRoundTrip(t *testing.T) {
	g, err := BuildGrid(&enclosure.Enclosure{Width: 70, Height: 50, Depth: 30}, nil, 10, 0)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	for i := 0; i < g.CellCount(); i++ {
		if got := g.Index(g.Coord(i)); got != i {
			t.Fatalf("Index(Coord(%d)) = %d", i, got)
		}
	}
}
