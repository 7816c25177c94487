package routing

import "panel-router/pkg/geometry"

// PathStatus tags the outcome of a path search. Expected outcomes (no path,
// out of bounds, limit hit) are results, never errors.
type PathStatus int

const (
	// StatusRouted means a collision-free path was found.
	StatusRouted PathStatus = iota
	// StatusOutOfBounds means the start or end point lies outside the grid.
	StatusOutOfBounds
	// StatusNoPath means the search exhausted the frontier with no route.
	StatusNoPath
	// StatusSearchLimitExceeded means the defensive expansion cap was hit.
	// Treated as no-path by callers, but reported distinctly for diagnostics.
	StatusSearchLimitExceeded
)

func (s PathStatus) String() string {
	switch s {
	case StatusRouted:
		return "routed"
	case StatusOutOfBounds:
		return "out of bounds"
	case StatusNoPath:
		return "no path"
	case StatusSearchLimitExceeded:
		return "search limit exceeded"
	default:
		return "unknown"
	}
}

// PathResult is the tagged outcome of FindPath. Waypoints are world-space
// points, populated only when Status is StatusRouted.
type PathResult struct {
	Status    PathStatus
	Waypoints []geometry.Point3D
	Expanded  int
}

// Routed reports whether the search produced a usable path.
func (r PathResult) Routed() bool {
	return r.Status == StatusRouted
}
