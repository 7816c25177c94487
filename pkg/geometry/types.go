// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Point3D represents a 3D point with floating-point coordinates, in millimeters.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPoint3D creates a new Point3D.
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Vec returns the point as a gonum r3 vector.
func (p Point3D) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec converts a gonum r3 vector to a Point3D.
func FromVec(v r3.Vec) Point3D {
	return Point3D{X: v.X, Y: v.Y, Z: v.Z}
}

// Distance returns the Euclidean distance to another point.
func (p Point3D) Distance(other Point3D) float64 {
	return r3.Norm(r3.Sub(other.Vec(), p.Vec()))
}

// Add returns the sum of two points.
func (p Point3D) Add(other Point3D) Point3D {
	return FromVec(r3.Add(p.Vec(), other.Vec()))
}

// Sub returns the difference of two points.
func (p Point3D) Sub(other Point3D) Point3D {
	return FromVec(r3.Sub(p.Vec(), other.Vec()))
}

// Scale returns the point scaled by a factor.
func (p Point3D) Scale(factor float64) Point3D {
	return FromVec(r3.Scale(factor, p.Vec()))
}

// Point2D represents a 2D point with floating-point coordinates.
// Used for schematic (logical) positions.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size3D represents the physical dimensions of a box in millimeters.
type Size3D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// NewSize3D creates a new Size3D.
func NewSize3D(width, height, depth float64) Size3D {
	return Size3D{Width: width, Height: height, Depth: depth}
}

// Box represents an axis-aligned box with floating-point coordinates.
type Box struct {
	Min Point3D `json:"min"`
	Max Point3D `json:"max"`
}

// NewBox creates a box from an origin corner and a size.
func NewBox(origin Point3D, size Size3D) Box {
	return Box{
		Min: origin,
		Max: Point3D{X: origin.X + size.Width, Y: origin.Y + size.Height, Z: origin.Z + size.Depth},
	}
}

// Expand returns the box grown by margin on all six faces.
func (b Box) Expand(margin float64) Box {
	return Box{
		Min: Point3D{X: b.Min.X - margin, Y: b.Min.Y - margin, Z: b.Min.Z - margin},
		Max: Point3D{X: b.Max.X + margin, Y: b.Max.Y + margin, Z: b.Max.Z + margin},
	}
}

// Contains returns true if the point is inside the box (inclusive of faces).
func (b Box) Contains(p Point3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects returns true if this box overlaps another on all three axes.
// Touching faces count as non-overlapping (strict inequality), so adjacent
// components sharing a boundary never report a false collision.
func (b Box) Intersects(other Box) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// Center returns the center point of the box.
func (b Box) Center() Point3D {
	return Point3D{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box dimensions.
func (b Box) Size() Size3D {
	return Size3D{
		Width:  b.Max.X - b.Min.X,
		Height: b.Max.Y - b.Min.Y,
		Depth:  b.Max.Z - b.Min.Z,
	}
}
