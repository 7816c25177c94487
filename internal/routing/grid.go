// Package routing provides occupancy grid construction and A* wire path
// search over the enclosure volume.
package routing

import (
	"errors"
	"math"

	"panel-router/internal/enclosure"
	"panel-router/pkg/geometry"
)

// ErrInvalidGridParameters reports a malformed enclosure or resolution.
// Callers must not proceed to path search when grid construction fails.
var ErrInvalidGridParameters = errors.New("invalid grid parameters")

// Obstacle is a placed volume that blocks wire routing. The routing engine
// is deliberately decoupled from the component store: callers translate
// placed instances into obstacles.
type Obstacle struct {
	Position geometry.Point3D
	Size     geometry.Size3D
}

// Box returns the obstacle's world-space bounding box.
func (o Obstacle) Box() geometry.Box {
	return geometry.NewBox(o.Position, o.Size)
}

// Grid is a discretized view of the enclosure volume. Cells are stored in a
// flat arena indexed x + y*W + z*W*H. The grid holds only the blocked state;
// per-search bookkeeping lives in the search pass so a grid can be reused
// across any number of searches.
type Grid struct {
	NX, NY, NZ int
	Resolution float64
	Origin     geometry.Point3D

	blocked []bool
}

// Index returns the flat arena index for a cell coordinate.
func (g *Grid) Index(ix geometry.GridIndex) int {
	return ix.X + ix.Y*g.NX + ix.Z*g.NX*g.NY
}

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) geometry.GridIndex {
	return geometry.GridIndex{
		X: i % g.NX,
		Y: (i / g.NX) % g.NY,
		Z: i / (g.NX * g.NY),
	}
}

// InBounds reports whether a cell coordinate lies inside the grid.
func (g *Grid) InBounds(ix geometry.GridIndex) bool {
	return ix.X >= 0 && ix.X < g.NX &&
		ix.Y >= 0 && ix.Y < g.NY &&
		ix.Z >= 0 && ix.Z < g.NZ
}

// Blocked reports whether the cell is occupied by an obstacle.
func (g *Grid) Blocked(ix geometry.GridIndex) bool {
	return g.blocked[g.Index(ix)]
}

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int {
	return g.NX * g.NY * g.NZ
}

// CellCenter returns the world-space center of a cell.
func (g *Grid) CellCenter(ix geometry.GridIndex) geometry.Point3D {
	return geometry.GridToWorld(ix, g.Resolution, g.Origin)
}

// CellOf returns the cell containing a world-space point.
func (g *Grid) CellOf(p geometry.Point3D) geometry.GridIndex {
	return geometry.WorldToGrid(p, g.Resolution, g.Origin)
}

// Block marks every cell covered by the world-space box as occupied.
// Blocking is a pure union, so the final grid state is independent of the
// order obstacles are applied in.
func (g *Grid) Block(box geometry.Box) {
	lo := g.CellOf(box.Min)
	hi := g.CellOf(box.Max)
	if hi.X < 0 || hi.Y < 0 || hi.Z < 0 ||
		lo.X >= g.NX || lo.Y >= g.NY || lo.Z >= g.NZ {
		return
	}

	clampAxis := func(v, n int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}

	x0, x1 := clampAxis(lo.X, g.NX), clampAxis(hi.X, g.NX)
	y0, y1 := clampAxis(lo.Y, g.NY), clampAxis(hi.Y, g.NY)
	z0, z1 := clampAxis(lo.Z, g.NZ), clampAxis(hi.Z, g.NZ)

	for z := z0; z <= z1; z++ {
		for y := y0; y <= y1; y++ {
			base := y*g.NX + z*g.NX*g.NY
			for x := x0; x <= x1; x++ {
				g.blocked[base+x] = true
			}
		}
	}
}

// BuildGrid discretizes the enclosure volume at the given cell resolution
// and marks every cell covered by a placed obstacle, each padded by the
// clearance margin. It fails with ErrInvalidGridParameters when the
// resolution or any enclosure dimension is non-positive.
func BuildGrid(enc *enclosure.Enclosure, obstacles []Obstacle, resolution, clearance float64) (*Grid, error) {
	if resolution <= 0 {
		return nil, ErrInvalidGridParameters
	}
	if enc == nil || enc.Width <= 0 || enc.Height <= 0 || enc.Depth <= 0 {
		return nil, ErrInvalidGridParameters
	}

	g := &Grid{
		NX:         int(math.Ceil(enc.Width / resolution)),
		NY:         int(math.Ceil(enc.Height / resolution)),
		NZ:         int(math.Ceil(enc.Depth / resolution)),
		Resolution: resolution,
	}
	g.blocked = make([]bool, g.CellCount())

	for _, ob := range obstacles {
		g.Block(ob.Box().Expand(clearance))
	}
	return g, nil
}
