package geometry

import "math"

// GridIndex represents a 3D cell coordinate in a discretized volume.
type GridIndex struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Manhattan returns the Manhattan (L1) distance to another index, in cells.
func (g GridIndex) Manhattan(other GridIndex) int {
	return absInt(g.X-other.X) + absInt(g.Y-other.Y) + absInt(g.Z-other.Z)
}

// WorldToGrid maps a world-space point to the cell containing it, using
// floor division relative to the grid origin.
func WorldToGrid(p Point3D, resolution float64, origin Point3D) GridIndex {
	return GridIndex{
		X: int(math.Floor((p.X - origin.X) / resolution)),
		Y: int(math.Floor((p.Y - origin.Y) / resolution)),
		Z: int(math.Floor((p.Z - origin.Z) / resolution)),
	}
}

// GridToWorld maps a cell coordinate to the world-space center of that cell.
// It is the exact inverse of WorldToGrid at cell centers.
func GridToWorld(ix GridIndex, resolution float64, origin Point3D) Point3D {
	return Point3D{
		X: origin.X + (float64(ix.X)+0.5)*resolution,
		Y: origin.Y + (float64(ix.Y)+0.5)*resolution,
		Z: origin.Z + (float64(ix.Z)+0.5)*resolution,
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
