// Package enclosure provides panel enclosure and mounting rail definitions.
package enclosure

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"panel-router/pkg/geometry"
)

// Orientation specifies how a mounting rail runs inside the enclosure.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Axis returns the world axis the rail runs along.
func (o Orientation) Axis() geometry.Axis {
	if o == Vertical {
		return geometry.AxisY
	}
	return geometry.AxisX
}

// Rail is a linear mounting track onto which components snap at fixed
// module increments. Rails are never mutated by the routing core.
type Rail struct {
	ID          string           `json:"id"`
	Position    geometry.Point3D `json:"position"`
	Length      float64          `json:"length"`
	Orientation Orientation      `json:"orientation"`
	MaxModules  int              `json:"max_modules"`
}

// Line returns the rail's geometric description for snapping math.
func (r Rail) Line() geometry.RailLine {
	return geometry.RailLine{
		Anchor: r.Position,
		Axis:   r.Orientation.Axis(),
		Length: r.Length,
	}
}

// End returns the far end of the rail.
func (r Rail) End() geometry.Point3D {
	return geometry.FromVec(r3.Add(r.Position.Vec(), r3.Scale(r.Length, r.Orientation.Axis().Unit())))
}

// Enclosure is the panel volume: continuous dimensions in millimeters and
// the mounting rails fixed inside it.
type Enclosure struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Rails  []Rail  `json:"rails"`
}

// Bounds returns the enclosure volume as a box anchored at the origin.
func (e *Enclosure) Bounds() geometry.Box {
	return geometry.NewBox(geometry.Point3D{}, geometry.Size3D{Width: e.Width, Height: e.Height, Depth: e.Depth})
}

// Contains reports whether a point lies inside the enclosure volume.
func (e *Enclosure) Contains(p geometry.Point3D) bool {
	return e.Bounds().Contains(p)
}

// Validate checks the enclosure invariants: positive dimensions and every
// rail anchored fully within the volume.
func (e *Enclosure) Validate() error {
	if e.Width <= 0 || e.Height <= 0 || e.Depth <= 0 {
		return fmt.Errorf("enclosure dimensions must be positive, got %gx%gx%g", e.Width, e.Height, e.Depth)
	}
	for _, rail := range e.Rails {
		if rail.Length <= 0 {
			return fmt.Errorf("rail %q has non-positive length %g", rail.ID, rail.Length)
		}
		if rail.MaxModules <= 0 {
			return fmt.Errorf("rail %q has non-positive module count %d", rail.ID, rail.MaxModules)
		}
		if !e.Contains(rail.Position) || !e.Contains(rail.End()) {
			return fmt.Errorf("rail %q extends outside the enclosure volume", rail.ID)
		}
	}
	return nil
}
