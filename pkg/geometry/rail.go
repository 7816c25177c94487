package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// RailLine is the geometric description of a mounting rail: an anchor point
// and a run of Length millimeters along a world axis.
type RailLine struct {
	Anchor Point3D `json:"anchor"`
	Axis   Axis    `json:"axis"`
	Length float64 `json:"length"`
}

// PerpendicularDistance returns the distance from p to the infinite line
// through the rail, ignoring the along-rail component.
func (r RailLine) PerpendicularDistance(p Point3D) float64 {
	d := r3.Sub(p.Vec(), r.Anchor.Vec())
	along := r3.Dot(d, r.Axis.Unit())
	perp := r3.Sub(d, r3.Scale(along, r.Axis.Unit()))
	return r3.Norm(perp)
}

// QuantizeToRail snaps a free position onto the rail at the nearest whole
// module slot. It returns false when the position's perpendicular distance
// to the rail exceeds snapTolerance. The along-rail offset is rounded to the
// nearest multiple of moduleWidth and clamped to the rail's run.
func QuantizeToRail(p Point3D, rail RailLine, moduleWidth, snapTolerance float64) (Point3D, int, bool) {
	if moduleWidth <= 0 || rail.Length <= 0 {
		return Point3D{}, 0, false
	}
	if rail.PerpendicularDistance(p) > snapTolerance {
		return Point3D{}, 0, false
	}

	d := r3.Sub(p.Vec(), rail.Anchor.Vec())
	along := r3.Dot(d, rail.Axis.Unit())

	slot := int(math.Round(along / moduleWidth))
	maxSlot := int(rail.Length / moduleWidth)
	if slot < 0 {
		slot = 0
	}
	if slot > maxSlot {
		slot = maxSlot
	}

	snapped := r3.Add(rail.Anchor.Vec(), r3.Scale(float64(slot)*moduleWidth, rail.Axis.Unit()))
	return FromVec(snapped), slot, true
}
