// Package catalog provides component definition templates and pin metadata.
package catalog

import (
	"encoding/json"
	"fmt"

	"panel-router/pkg/geometry"
)

// PinType classifies a logical pin's electrical role.
type PinType int

const (
	PinPower PinType = iota
	PinGround
	PinNeutral
	PinInput
	PinOutput
)

var pinTypeNames = map[PinType]string{
	PinPower:   "power",
	PinGround:  "ground",
	PinNeutral: "neutral",
	PinInput:   "input",
	PinOutput:  "output",
}

func (t PinType) String() string {
	if name, ok := pinTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON encodes the pin type as its stable lowercase name.
func (t PinType) MarshalJSON() ([]byte, error) {
	name, ok := pinTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown pin type %d", int(t))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a pin type from its name, rejecting unknown tags so
// the enumeration stays closed.
func (t *PinType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for pt, n := range pinTypeNames {
		if n == name {
			*t = pt
			return nil
		}
	}
	return fmt.Errorf("unknown pin type %q", name)
}

// LogicalPin is a named electrical terminal on a component definition. Its
// position is normalized to [0,1] within the component footprint.
type LogicalPin struct {
	Name string  `json:"name"`
	Type PinType `json:"type"`
	RelX float64 `json:"rel_x"`
	RelY float64 `json:"rel_y"`
	RelZ float64 `json:"rel_z"`
}

// Offset resolves the pin's normalized position to a millimeter offset from
// the component origin for a footprint of the given size.
func (p LogicalPin) Offset(size geometry.Size3D) geometry.Point3D {
	return geometry.Point3D{
		X: p.RelX * size.Width,
		Y: p.RelY * size.Height,
		Z: p.RelZ * size.Depth,
	}
}

// Definition is an immutable catalog entry: a component template with its
// physical dimensions and logical pins.
type Definition struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Size geometry.Size3D `json:"size"`
	Pins []LogicalPin    `json:"pins"`
}

// Pin returns the logical pin with the given name, or nil if absent.
func (d *Definition) Pin(name string) *LogicalPin {
	for i := range d.Pins {
		if d.Pins[i].Name == name {
			return &d.Pins[i]
		}
	}
	return nil
}

// PinOffset resolves a named pin to its millimeter offset from the component
// origin. The second return is false when the pin does not exist.
func (d *Definition) PinOffset(name string) (geometry.Point3D, bool) {
	pin := d.Pin(name)
	if pin == nil {
		return geometry.Point3D{}, false
	}
	return pin.Offset(d.Size), true
}

// Validate checks the definition invariants: positive dimensions, unique pin
// names, and pin coordinates within [0,1].
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition has empty id")
	}
	if d.Size.Width <= 0 || d.Size.Height <= 0 || d.Size.Depth <= 0 {
		return fmt.Errorf("definition %q has non-positive dimensions", d.ID)
	}
	seen := make(map[string]bool, len(d.Pins))
	for _, pin := range d.Pins {
		if pin.Name == "" {
			return fmt.Errorf("definition %q has a pin with an empty name", d.ID)
		}
		if seen[pin.Name] {
			return fmt.Errorf("definition %q has duplicate pin %q", d.ID, pin.Name)
		}
		seen[pin.Name] = true
		if pin.RelX < 0 || pin.RelX > 1 || pin.RelY < 0 || pin.RelY > 1 || pin.RelZ < 0 || pin.RelZ > 1 {
			return fmt.Errorf("definition %q pin %q has coordinates outside [0,1]", d.ID, pin.Name)
		}
	}
	return nil
}
