package twin

import (
	"encoding/json"
	"fmt"

	"panel-router/internal/catalog"
	"panel-router/internal/enclosure"
)

// SnapshotVersion is bumped on incompatible snapshot layout changes.
const SnapshotVersion = 1

// Snapshot is the whole-state persistence record: enclosure, component
// library, instances, connections, and wires. Wire waypoints are included
// but loaders may recompute them, since routing is deterministic.
type Snapshot struct {
	Version     int                  `json:"version"`
	Enclosure   *enclosure.Enclosure `json:"enclosure"`
	Library     *catalog.Library     `json:"library"`
	Instances   []Instance           `json:"instances"`
	Connections []Connection         `json:"connections"`
	Wires       []Wire               `json:"wires"`
}

// ExportSnapshot serializes the entire store state.
func (s *Store) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Version:     SnapshotVersion,
		Enclosure:   s.enclosure,
		Library:     s.library,
		Instances:   make([]Instance, len(s.instances)),
		Connections: make([]Connection, len(s.connections)),
		Wires:       make([]Wire, len(s.wires)),
	}
	for i, in := range s.instances {
		snap.Instances[i] = copyInstance(in)
	}
	for i, c := range s.connections {
		snap.Connections[i] = *c
	}
	for i, w := range s.wires {
		snap.Wires[i] = *w
		snap.Wires[i].Waypoints = append([]Waypoint(nil), w.Waypoints...)
	}
	return json.MarshalIndent(snap, "", "  ")
}

// LoadSnapshot replaces the entire store state from serialized data. The
// snapshot is unmarshaled and validated into staging structures first; the
// store is only mutated once everything checks out, so a bad snapshot never
// leaves partial state behind.
func (s *Store) LoadSnapshot(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.Enclosure == nil {
		return fmt.Errorf("snapshot has no enclosure")
	}
	if err := snap.Enclosure.Validate(); err != nil {
		return fmt.Errorf("snapshot enclosure: %w", err)
	}

	lib := snap.Library
	if lib == nil {
		lib = catalog.NewLibrary()
	}
	for _, def := range lib.Definitions {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("snapshot library: %w", err)
		}
	}

	// Stage instances: resolve definitions and re-derive physical pins from
	// positions rather than trusting serialized pin coordinates.
	instances := make([]*Instance, 0, len(snap.Instances))
	byID := make(map[string]*Instance, len(snap.Instances))
	for _, in := range snap.Instances {
		def := lib.Get(in.DefinitionID)
		if def == nil {
			return fmt.Errorf("%w: instance %s references %s", ErrUnknownDefinition, in.ID, in.DefinitionID)
		}
		staged := in
		staged.def = def
		staged.recomputePins()
		if byID[staged.ID] != nil {
			return fmt.Errorf("snapshot has duplicate instance id %s", staged.ID)
		}
		instances = append(instances, &staged)
		byID[staged.ID] = &staged
	}

	// Stage connections: every pin must resolve.
	connections := make([]*Connection, 0, len(snap.Connections))
	connByID := make(map[string]*Connection, len(snap.Connections))
	for _, c := range snap.Connections {
		for _, ref := range []PinRef{c.From, c.To} {
			in := byID[ref.Instance]
			if in == nil || in.Pin(ref.Pin) == nil {
				return fmt.Errorf("%w: connection %s references %s", ErrUnknownPin, c.ID, ref)
			}
		}
		staged := c
		connections = append(connections, &staged)
		connByID[staged.ID] = &staged
	}

	// Stage wires: each must belong to a staged connection.
	wires := make([]*Wire, 0, len(snap.Wires))
	for _, w := range snap.Wires {
		if connByID[w.ConnectionID] == nil {
			return fmt.Errorf("%w: wire %s references connection %s", ErrUnknownConnection, w.ID, w.ConnectionID)
		}
		staged := w
		staged.Waypoints = append([]Waypoint(nil), w.Waypoints...)
		wires = append(wires, &staged)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.enclosure = snap.Enclosure
	s.library = lib
	s.instances = instances
	s.connections = connections
	s.wires = wires

	s.emit(EventSnapshotLoaded, "")
	return nil
}
