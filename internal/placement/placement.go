// Package placement provides collision detection and rail snapping for
// physically placed components.
package placement

import (
	"panel-router/internal/enclosure"
	"panel-router/pkg/geometry"
)

// Candidate is a component footprint at a proposed physical position.
type Candidate struct {
	Position geometry.Point3D
	Size     geometry.Size3D
}

// Box returns the candidate's world-space bounding box.
func (c Candidate) Box() geometry.Box {
	return geometry.NewBox(c.Position, c.Size)
}

// CheckCollision reports whether the candidate, padded by the clearance
// margin, overlaps any other footprint. Callers pass only physically placed
// components: an unplaced component cannot collide.
func CheckCollision(candidate Candidate, others []Candidate, clearance float64) bool {
	box := candidate.Box().Expand(clearance)
	for _, other := range others {
		if box.Intersects(other.Box()) {
			return true
		}
	}
	return false
}

// SnapResult describes a successful rail snap.
type SnapResult struct {
	Rail     enclosure.Rail
	Position geometry.Point3D
	Slot     int
}

// SnapToNearestRail snaps a free position onto a mounting rail at a whole
// module slot. Rails are tried in input order, and the first rail within
// tolerance wins: first-match rather than best-match, so rail priority is
// controlled by the enclosure's rail ordering. Returns false when no rail
// qualifies, in which case the caller keeps the free-floating position.
func SnapToNearestRail(p geometry.Point3D, rails []enclosure.Rail, moduleWidth, tolerance float64) (SnapResult, bool) {
	for _, rail := range rails {
		snapped, slot, ok := geometry.QuantizeToRail(p, rail.Line(), moduleWidth, tolerance)
		if !ok {
			continue
		}
		// The rail's module capacity may be tighter than its physical run.
		if slot >= rail.MaxModules {
			slot = rail.MaxModules - 1
			snapped = slotPosition(rail, moduleWidth, slot)
		}
		return SnapResult{Rail: rail, Position: snapped, Slot: slot}, true
	}
	return SnapResult{}, false
}

// slotPosition returns the world position of a module slot on a rail.
func slotPosition(rail enclosure.Rail, moduleWidth float64, slot int) geometry.Point3D {
	offset := float64(slot) * moduleWidth
	switch rail.Orientation {
	case enclosure.Vertical:
		return rail.Position.Add(geometry.NewPoint3D(0, offset, 0))
	default:
		return rail.Position.Add(geometry.NewPoint3D(offset, 0, 0))
	}
}
