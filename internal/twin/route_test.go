package twin

import (
	"errors"
	"testing"

	"panel-router/internal/routing"
	"panel-router/pkg/geometry"
)

// connectPair places two breakers and connects a.out to b.in.
func connectPair(t *testing.T, s *Store) (a, b, connID string) {
	t.Helper()
	a = addPlaced(t, s, geometry.NewPoint3D(100, 100, 10))
	b = addPlaced(t, s, geometry.NewPoint3D(400, 100, 10))
	connID, err := s.AddLogicalConnection(PinRef{a, "out"}, PinRef{b, "in"}, WirePower)
	if err != nil {
		t.Fatalf("AddLogicalConnection: %v", err)
	}
	return a, b, connID
}

func TestRouteWire(t *testing.T) {
	s := testStore(t)
	_, _, connID := connectPair(t, s)

	res, err := s.RouteWire(connID, 10)
	if err != nil {
		t.Fatalf("RouteWire: %v", err)
	}
	if !res.Routed() {
		t.Fatalf("status = %v", res.Status)
	}

	wires := s.Wires()
	if len(wires) != 1 {
		t.Fatalf("wires = %d", len(wires))
	}
	w := wires[0]
	if !w.Routed() {
		t.Fatal("wire still unrouted after RouteWire")
	}
	if w.Length() <= 0 {
		t.Errorf("routed wire length = %v", w.Length())
	}
	for _, wp := range w.Waypoints {
		if wp.Anchored {
			t.Error("computed waypoint marked user-anchored")
		}
	}
}

func TestRouteWireEndpointsMatchPins(t *testing.T) {
	s := testStore(t)
	a, b, connID := connectPair(t, s)

	res, err := s.RouteWire(connID, 10)
	if err != nil || !res.Routed() {
		t.Fatalf("RouteWire: %v %v", res.Status, err)
	}

	fromWorld, err := s.PinWorld(PinRef{Instance: a, Pin: "out"})
	if err != nil {
		t.Fatal(err)
	}
	toWorld, err := s.PinWorld(PinRef{Instance: b, Pin: "in"})
	if err != nil {
		t.Fatal(err)
	}

	first := res.Waypoints[0]
	last := res.Waypoints[len(res.Waypoints)-1]
	const res10 = 10.0
	if first.Distance(fromWorld) > res10 {
		t.Errorf("first waypoint %+v is more than one cell from pin %+v", first, fromWorld)
	}
	if last.Distance(toWorld) > res10 {
		t.Errorf("last waypoint %+v is more than one cell from pin %+v", last, toWorld)
	}
}

func TestRouteWireIdempotent(t *testing.T) {
	s := testStore(t)
	// Extra obstacle between the endpoints so the path has corners.
	mid, err := s.AddComponentInstance("contactor", geometry.Point2D{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.UpdatePhysicalPosition(mid, geometry.NewPoint3D(230, 60, 10), NoRailSlot); err != nil {
		t.Fatal(err)
	}
	_, _, connID := connectPair(t, s)

	first, err := s.RouteWire(connID, 10)
	if err != nil || !first.Routed() {
		t.Fatalf("first RouteWire: %v %v", first.Status, err)
	}
	firstWires := s.Wires()

	second, err := s.RouteWire(connID, 10)
	if err != nil || !second.Routed() {
		t.Fatalf("second RouteWire: %v %v", second.Status, err)
	}
	secondWires := s.Wires()

	a, b := firstWires[0].Waypoints, secondWires[0].Waypoints
	if len(a) != len(b) {
		t.Fatalf("waypoint count changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("waypoint %d changed across identical re-route: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRouteWireUnknownConnection(t *testing.T) {
	s := testStore(t)
	if _, err := s.RouteWire("ghost", 10); !errors.Is(err, ErrUnknownConnection) {
		t.Errorf("error = %v, want ErrUnknownConnection", err)
	}
}

func TestRouteWireInvalidResolution(t *testing.T) {
	s := testStore(t)
	_, _, connID := connectPair(t, s)
	if _, err := s.RouteWire(connID, 0); !errors.Is(err, routing.ErrInvalidGridParameters) {
		t.Errorf("error = %v, want ErrInvalidGridParameters", err)
	}
	// The failed attempt must not have touched the wire.
	if s.Wires()[0].Routed() {
		t.Error("wire routed despite invalid parameters")
	}
}

func TestRouteWireOutOfBoundsPin(t *testing.T) {
	s := testStore(t)
	a := addPlaced(t, s, geometry.NewPoint3D(100, 100, 10))
	b := addPlaced(t, s, geometry.NewPoint3D(790, 590, 190)) // pin pokes outside
	connID, err := s.AddLogicalConnection(PinRef{a, "out"}, PinRef{b, "in"}, WireSignal)
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.RouteWire(connID, 10)
	if err != nil {
		t.Fatalf("RouteWire returned error for expected condition: %v", err)
	}
	if res.Status != routing.StatusOutOfBounds {
		t.Errorf("status = %v, want StatusOutOfBounds", res.Status)
	}
	if s.Wires()[0].Routed() {
		t.Error("wire has waypoints despite unroutable result")
	}
}

func TestRouteWireSearchLimit(t *testing.T) {
	s := testStore(t)
	_, _, connID := connectPair(t, s)
	s.SetSearchLimit(3)

	res, err := s.RouteWire(connID, 10)
	if err != nil {
		t.Fatalf("RouteWire: %v", err)
	}
	if res.Status != routing.StatusSearchLimitExceeded {
		t.Errorf("status = %v, want StatusSearchLimitExceeded", res.Status)
	}
	if s.Wires()[0].Routed() {
		t.Error("wire routed despite exceeding the search limit")
	}
}

func TestRouteAllWires(t *testing.T) {
	s := testStore(t)
	a := addPlaced(t, s, geometry.NewPoint3D(100, 100, 10))
	b := addPlaced(t, s, geometry.NewPoint3D(400, 100, 10))
	c := addPlaced(t, s, geometry.NewPoint3D(400, 400, 10))

	if _, err := s.AddLogicalConnection(PinRef{a, "out"}, PinRef{b, "in"}, WirePower); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddLogicalConnection(PinRef{b, "out"}, PinRef{c, "in"}, WireSignal); err != nil {
		t.Fatal(err)
	}

	reports, err := s.RouteAllWires(10)
	if err != nil {
		t.Fatalf("RouteAllWires: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %d", len(reports))
	}
	for _, rep := range reports {
		if !rep.Result.Routed() {
			t.Errorf("connection %s unrouted: %v", rep.ConnectionID, rep.Result.Status)
		}
	}
	for _, w := range s.Wires() {
		if !w.Routed() {
			t.Errorf("wire %s unrouted after RouteAllWires", w.ID)
		}
	}
}

func TestMoveDoesNotReroute(t *testing.T) {
	s := testStore(t)
	a, _, connID := connectPair(t, s)

	if res, err := s.RouteWire(connID, 10); err != nil || !res.Routed() {
		t.Fatalf("RouteWire: %v %v", res.Status, err)
	}
	before := s.Wires()[0].Waypoints

	// Moving a component must not implicitly re-route; the stale path stays
	// until the caller explicitly routes again.
	if err := s.UpdatePhysicalPosition(a, geometry.NewPoint3D(150, 200, 10), NoRailSlot); err != nil {
		t.Fatal(err)
	}
	after := s.Wires()[0].Waypoints
	if len(before) != len(after) {
		t.Fatalf("move re-routed the wire: %d vs %d waypoints", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("move re-routed the wire at waypoint %d", i)
		}
	}
}
