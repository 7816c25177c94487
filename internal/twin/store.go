package twin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"panel-router/internal/catalog"
	"panel-router/internal/enclosure"
	"panel-router/internal/routing"
	"panel-router/pkg/geometry"
)

// Referential violations on incoming calls. The offending operation is
// rejected with the store unchanged.
var (
	ErrUnknownComponent  = errors.New("unknown component instance")
	ErrUnknownDefinition = errors.New("unknown component definition")
	ErrUnknownPin        = errors.New("unknown pin")
	ErrUnknownConnection = errors.New("unknown connection")
)

// DefaultClearance is the obstacle padding margin applied around placed
// components during collision checks and grid construction, in millimeters.
const DefaultClearance = 5.0

// NoRailSlot marks an instance that is not mounted on a rail.
const NoRailSlot = -1

// Store is the single source of truth for the panel's digital twin. All
// entity mutation passes through its methods; readers receive copies.
type Store struct {
	mu sync.RWMutex

	enclosure *enclosure.Enclosure
	library   *catalog.Library

	instances   []*Instance
	connections []*Connection
	wires       []*Wire

	clearance   float64
	maxExpanded int

	listeners map[EventType][]EventListener
}

// NewStore creates a store for the given enclosure and component library.
func NewStore(enc *enclosure.Enclosure, lib *catalog.Library) (*Store, error) {
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	if lib == nil {
		lib = catalog.NewLibrary()
	}
	return &Store{
		enclosure:   enc,
		library:     lib,
		clearance:   DefaultClearance,
		maxExpanded: routing.DefaultMaxExpanded,
		listeners:   make(map[EventType][]EventListener),
	}, nil
}

// Enclosure returns the panel enclosure.
func (s *Store) Enclosure() *enclosure.Enclosure {
	return s.enclosure
}

// Library returns the component library backing instance definitions.
func (s *Store) Library() *catalog.Library {
	return s.library
}

// SetClearance overrides the obstacle padding margin.
func (s *Store) SetClearance(mm float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearance = mm
}

// SetSearchLimit overrides the per-search node expansion cap.
func (s *Store) SetSearchLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxExpanded = n
}

// AddComponentInstance creates an unplaced instance of a definition at a
// schematic position. The label is auto-numbered per definition. Physical
// pins are derived immediately, from the sentinel origin, so the pin
// invariant holds even before placement.
func (s *Store) AddComponentInstance(definitionID string, schematicPos geometry.Point2D) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.library.Get(definitionID)
	if def == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownDefinition, definitionID)
	}

	count := 0
	for _, in := range s.instances {
		if in.DefinitionID == definitionID {
			count++
		}
	}

	in := &Instance{
		ID:                uuid.NewString(),
		DefinitionID:      definitionID,
		Label:             fmt.Sprintf("%s %d", def.Name, count+1),
		SchematicPosition: schematicPos,
		RailSlot:          NoRailSlot,
		def:               def,
	}
	in.recomputePins()
	s.instances = append(s.instances, in)

	s.emit(EventComponentsChanged, in.ID)
	return in.ID, nil
}

// RemoveComponentInstance removes an instance, every logical connection
// referencing any of its pins, and every wire belonging to those
// connections, in that order under a single lock: no reader ever observes a
// connection pointing at a removed instance.
func (s *Store) RemoveComponentInstance(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, in := range s.instances {
		if in.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownComponent, id)
	}
	s.instances = append(s.instances[:idx], s.instances[idx+1:]...)

	removed := make(map[string]bool)
	kept := s.connections[:0]
	for _, c := range s.connections {
		if c.References(id) {
			removed[c.ID] = true
			continue
		}
		kept = append(kept, c)
	}
	s.connections = kept

	keptWires := s.wires[:0]
	for _, w := range s.wires {
		if removed[w.ConnectionID] {
			continue
		}
		keptWires = append(keptWires, w)
	}
	s.wires = keptWires

	s.emit(EventComponentsChanged, id)
	if len(removed) > 0 {
		s.emit(EventConnectionsChanged, id)
	}
	return nil
}

// UpdatePhysicalPosition overwrites an instance's physical position and
// synchronously recomputes every physical pin's world coordinate. It never
// re-routes affected wires: routing is an explicit, separate operation so
// drag latency stays independent of search cost. railSlot is NoRailSlot for
// free placement.
func (s *Store) UpdatePhysicalPosition(id string, pos geometry.Point3D, railSlot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.instance(id)
	if in == nil {
		return fmt.Errorf("%w: %s", ErrUnknownComponent, id)
	}

	in.PhysicalPosition = pos
	in.Placed = true
	in.RailSlot = railSlot
	in.recomputePins()

	s.emit(EventComponentsChanged, id)
	return nil
}

// AddLogicalConnection creates a connection between two pins and,
// atomically with it, an empty (unrouted) wire. Both pins must resolve to
// existing instances and definition pins.
func (s *Store) AddLogicalConnection(from, to PinRef, wt WireType) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range []PinRef{from, to} {
		if _, err := s.pinWorld(ref); err != nil {
			return "", err
		}
	}

	conn := &Connection{
		ID:   uuid.NewString(),
		From: from,
		To:   to,
		Type: wt,
	}
	s.connections = append(s.connections, conn)
	s.wires = append(s.wires, &Wire{
		ID:           uuid.NewString(),
		ConnectionID: conn.ID,
		Type:         wt,
	})

	s.emit(EventConnectionsChanged, conn.ID)
	return conn.ID, nil
}

// RemoveLogicalConnection removes a connection and its wire.
func (s *Store) RemoveLogicalConnection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.connections {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, id)
	}
	s.connections = append(s.connections[:idx], s.connections[idx+1:]...)

	kept := s.wires[:0]
	for _, w := range s.wires {
		if w.ConnectionID == id {
			continue
		}
		kept = append(kept, w)
	}
	s.wires = kept

	s.emit(EventConnectionsChanged, id)
	return nil
}

// RouteWire computes a physical path for one connection's wire. The
// occupancy grid is rebuilt from the current placements on every call and
// discarded afterwards; the two endpoint components are excluded from the
// obstacle set so their own footprints cannot wall in their pins. On an
// unroutable result the wire's waypoints stay empty and the tagged result
// is returned to the caller; only contract violations are errors.
func (s *Store) RouteWire(connectionID string, resolution float64) (routing.PathResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeLocked(connectionID, resolution)
}

func (s *Store) routeLocked(connectionID string, resolution float64) (routing.PathResult, error) {
	var conn *Connection
	for _, c := range s.connections {
		if c.ID == connectionID {
			conn = c
			break
		}
	}
	if conn == nil {
		return routing.PathResult{}, fmt.Errorf("%w: %s", ErrUnknownConnection, connectionID)
	}

	var wire *Wire
	for _, w := range s.wires {
		if w.ConnectionID == connectionID {
			wire = w
			break
		}
	}
	if wire == nil {
		return routing.PathResult{}, fmt.Errorf("%w: wire for %s", ErrUnknownConnection, connectionID)
	}

	fromWorld, err := s.pinWorld(conn.From)
	if err != nil {
		return routing.PathResult{}, err
	}
	toWorld, err := s.pinWorld(conn.To)
	if err != nil {
		return routing.PathResult{}, err
	}

	var obstacles []routing.Obstacle
	for _, in := range s.instances {
		if !in.Placed {
			continue
		}
		if in.ID == conn.From.Instance || in.ID == conn.To.Instance {
			continue
		}
		obstacles = append(obstacles, routing.Obstacle{
			Position: in.PhysicalPosition,
			Size:     in.def.Size,
		})
	}

	grid, err := routing.BuildGrid(s.enclosure, obstacles, resolution, s.clearance)
	if err != nil {
		return routing.PathResult{}, err
	}

	res := routing.FindPath(grid, fromWorld, toWorld, s.maxExpanded)
	if res.Routed() && len(res.Waypoints) >= 2 {
		wire.Waypoints = wire.Waypoints[:0]
		for _, p := range res.Waypoints {
			wire.Waypoints = append(wire.Waypoints, Waypoint{Position: p})
		}
		s.emit(EventWiresRouted, conn.ID)
	} else {
		wire.Waypoints = nil
	}
	return res, nil
}

// RouteReport pairs a connection with its routing outcome.
type RouteReport struct {
	ConnectionID string
	Label        string
	Result       routing.PathResult
}

// RouteAllWires routes every wire in the store in creation order. Each wire
// gets a fresh grid, since obstacle exclusion differs per wire.
func (s *Store) RouteAllWires(resolution float64) ([]RouteReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := make([]RouteReport, 0, len(s.connections))
	for _, c := range s.connections {
		res, err := s.routeLocked(c.ID, resolution)
		if err != nil {
			return reports, err
		}
		label := c.Label
		if label == "" {
			label = c.From.String() + " -> " + c.To.String()
		}
		reports = append(reports, RouteReport{ConnectionID: c.ID, Label: label, Result: res})
	}
	return reports, nil
}

// PinWorld resolves a pin reference to its current world coordinate.
func (s *Store) PinWorld(ref PinRef) (geometry.Point3D, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pinWorld(ref)
}

func (s *Store) pinWorld(ref PinRef) (geometry.Point3D, error) {
	in := s.instance(ref.Instance)
	if in == nil {
		return geometry.Point3D{}, fmt.Errorf("%w: %s", ErrUnknownPin, ref)
	}
	pin := in.Pin(ref.Pin)
	if pin == nil {
		return geometry.Point3D{}, fmt.Errorf("%w: %s", ErrUnknownPin, ref)
	}
	return pin.World, nil
}

func (s *Store) instance(id string) *Instance {
	for _, in := range s.instances {
		if in.ID == id {
			return in
		}
	}
	return nil
}

// Instance returns a copy of the instance with the given ID. Consumers get
// snapshots, not live references.
func (s *Store) Instance(id string) (Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in := s.instance(id)
	if in == nil {
		return Instance{}, false
	}
	return copyInstance(in), true
}

// Instances returns copies of all instances in creation order.
func (s *Store) Instances() []Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Instance, len(s.instances))
	for i, in := range s.instances {
		out[i] = copyInstance(in)
	}
	return out
}

// Connections returns copies of all logical connections in creation order.
func (s *Store) Connections() []Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Connection, len(s.connections))
	for i, c := range s.connections {
		out[i] = *c
	}
	return out
}

// Wires returns copies of all wires, including their waypoint lists.
func (s *Store) Wires() []Wire {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Wire, len(s.wires))
	for i, w := range s.wires {
		out[i] = *w
		out[i].Waypoints = append([]Waypoint(nil), w.Waypoints...)
	}
	return out
}

func copyInstance(in *Instance) Instance {
	out := *in
	out.Pins = append([]PhysicalPin(nil), in.Pins...)
	return out
}
