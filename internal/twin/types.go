// Package twin provides the authoritative store for component instances,
// logical connections, and routed wires, and keeps the logical and physical
// representations of each component synchronized.
package twin

import (
	"fmt"
	"strings"

	"panel-router/internal/catalog"
	"panel-router/pkg/geometry"
)

// PinRef identifies a physical pin by owning instance and pin name.
type PinRef struct {
	Instance string `json:"instance"`
	Pin      string `json:"pin"`
}

func (r PinRef) String() string {
	return r.Instance + "." + r.Pin
}

// ParsePinRef parses an "<instance>.<pin>" reference. Instance IDs never
// contain a dot, so the first dot is the separator.
func ParsePinRef(s string) (PinRef, error) {
	instance, pin, ok := strings.Cut(s, ".")
	if !ok || instance == "" || pin == "" {
		return PinRef{}, fmt.Errorf("malformed pin reference %q", s)
	}
	return PinRef{Instance: instance, Pin: pin}, nil
}

// PhysicalPin is the world-space realization of a logical pin. World always
// equals the owning instance's physical position plus Offset; the store
// recomputes it synchronously on every position update.
type PhysicalPin struct {
	Name   string           `json:"name"`
	Type   catalog.PinType  `json:"type"`
	Offset geometry.Point3D `json:"offset"`
	World  geometry.Point3D `json:"world"`
}

// Instance is a placed or unplaced occurrence of a component definition.
type Instance struct {
	ID                string           `json:"id"`
	DefinitionID      string           `json:"definition_id"`
	Label             string           `json:"label"`
	SchematicPosition geometry.Point2D `json:"schematic_position"`
	PhysicalPosition  geometry.Point3D `json:"physical_position"`
	Placed            bool             `json:"placed"`
	RailSlot          int              `json:"rail_slot"`
	Pins              []PhysicalPin    `json:"pins"`

	def *catalog.Definition
}

// Definition returns the instance's resolved component template.
func (in *Instance) Definition() *catalog.Definition {
	return in.def
}

// Pin returns the physical pin with the given name, or nil.
func (in *Instance) Pin(name string) *PhysicalPin {
	for i := range in.Pins {
		if in.Pins[i].Name == name {
			return &in.Pins[i]
		}
	}
	return nil
}

// recomputePins re-derives every physical pin's world coordinate from the
// current physical position. Called on creation, every move, and load.
func (in *Instance) recomputePins() {
	in.Pins = in.Pins[:0]
	for _, lp := range in.def.Pins {
		offset := lp.Offset(in.def.Size)
		in.Pins = append(in.Pins, PhysicalPin{
			Name:   lp.Name,
			Type:   lp.Type,
			Offset: offset,
			World:  in.PhysicalPosition.Add(offset),
		})
	}
}

// WireType classifies a logical connection and drives wire rendering.
type WireType int

const (
	WirePower WireType = iota
	WireSignal
	WireGround
)

func (t WireType) String() string {
	switch t {
	case WirePower:
		return "power"
	case WireSignal:
		return "signal"
	case WireGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Color returns the rendering color for the wire type. Every case is
// covered so downstream renderers never see an unstyled wire.
func (t WireType) Color() string {
	switch t {
	case WirePower:
		return "#d32f2f"
	case WireSignal:
		return "#1976d2"
	case WireGround:
		return "#388e3c"
	default:
		return "#9e9e9e"
	}
}

// Thickness returns the rendering thickness in millimeters.
func (t WireType) Thickness() float64 {
	switch t {
	case WirePower:
		return 2.5
	case WireGround:
		return 2.5
	case WireSignal:
		return 1.0
	default:
		return 1.0
	}
}

// Connection is an unordered pair of pins with a wire type. Both pins must
// resolve to existing instances for the connection to exist.
type Connection struct {
	ID    string   `json:"id"`
	From  PinRef   `json:"from"`
	To    PinRef   `json:"to"`
	Type  WireType `json:"type"`
	Label string   `json:"label,omitempty"`
}

// References reports whether either end of the connection belongs to the
// given instance.
func (c Connection) References(instanceID string) bool {
	return c.From.Instance == instanceID || c.To.Instance == instanceID
}

// Waypoint is one point on a routed wire. Anchored waypoints were pinned by
// the user; computed ones come from the path search.
type Waypoint struct {
	Position geometry.Point3D `json:"position"`
	Anchored bool             `json:"anchored,omitempty"`
}

// Wire is the physical routing result for one logical connection. A wire
// with fewer than two waypoints is unrouted.
type Wire struct {
	ID           string     `json:"id"`
	ConnectionID string     `json:"connection_id"`
	Type         WireType   `json:"type"`
	Waypoints    []Waypoint `json:"waypoints,omitempty"`
}

// Routed reports whether the wire has a physical path.
func (w *Wire) Routed() bool {
	return len(w.Waypoints) >= 2
}

// Length returns the total routed length in millimeters. Unrouted wires
// (zero or one waypoint) are never length-computed and report zero.
func (w *Wire) Length() float64 {
	if !w.Routed() {
		return 0
	}
	var total float64
	for i := 1; i < len(w.Waypoints); i++ {
		total += w.Waypoints[i-1].Position.Distance(w.Waypoints[i].Position)
	}
	return total
}
