package catalog

import "panel-router/pkg/geometry"

// StandardDefinitions contains templates for common DIN-rail panel gear.
// Dimensions follow DIN 43880: one module is 18mm wide, 85-90mm tall.
var StandardDefinitions = map[string]*Definition{
	"breaker-1p": {
		ID:   "breaker-1p",
		Name: "Circuit Breaker",
		Size: geometry.Size3D{Width: 18, Height: 85, Depth: 70},
		Pins: []LogicalPin{
			{Name: "in", Type: PinInput, RelX: 0.5, RelY: 0.0, RelZ: 0.5},
			{Name: "out", Type: PinOutput, RelX: 0.5, RelY: 1.0, RelZ: 0.5},
		},
	},
	"breaker-2p": {
		ID:   "breaker-2p",
		Name: "2-Pole Breaker",
		Size: geometry.Size3D{Width: 36, Height: 85, Depth: 70},
		Pins: []LogicalPin{
			{Name: "l-in", Type: PinInput, RelX: 0.25, RelY: 0.0, RelZ: 0.5},
			{Name: "n-in", Type: PinNeutral, RelX: 0.75, RelY: 0.0, RelZ: 0.5},
			{Name: "l-out", Type: PinOutput, RelX: 0.25, RelY: 1.0, RelZ: 0.5},
			{Name: "n-out", Type: PinNeutral, RelX: 0.75, RelY: 1.0, RelZ: 0.5},
		},
	},
	"contactor": {
		ID:   "contactor",
		Name: "Contactor",
		Size: geometry.Size3D{Width: 54, Height: 85, Depth: 85},
		Pins: []LogicalPin{
			{Name: "a1", Type: PinInput, RelX: 0.2, RelY: 0.0, RelZ: 0.5},
			{Name: "a2", Type: PinNeutral, RelX: 0.8, RelY: 0.0, RelZ: 0.5},
			{Name: "l1", Type: PinPower, RelX: 0.2, RelY: 1.0, RelZ: 0.5},
			{Name: "t1", Type: PinOutput, RelX: 0.8, RelY: 1.0, RelZ: 0.5},
		},
	},
	"terminal-block": {
		ID:   "terminal-block",
		Name: "Terminal Block",
		Size: geometry.Size3D{Width: 6, Height: 50, Depth: 45},
		Pins: []LogicalPin{
			{Name: "a", Type: PinInput, RelX: 0.5, RelY: 0.0, RelZ: 0.5},
			{Name: "b", Type: PinOutput, RelX: 0.5, RelY: 1.0, RelZ: 0.5},
		},
	},
	"psu-24v": {
		ID:   "psu-24v",
		Name: "24V Power Supply",
		Size: geometry.Size3D{Width: 72, Height: 90, Depth: 100},
		Pins: []LogicalPin{
			{Name: "l", Type: PinPower, RelX: 0.15, RelY: 0.0, RelZ: 0.5},
			{Name: "n", Type: PinNeutral, RelX: 0.35, RelY: 0.0, RelZ: 0.5},
			{Name: "v+", Type: PinOutput, RelX: 0.65, RelY: 1.0, RelZ: 0.5},
			{Name: "v-", Type: PinGround, RelX: 0.85, RelY: 1.0, RelZ: 0.5},
		},
	},
	"relay": {
		ID:   "relay",
		Name: "Relay",
		Size: geometry.Size3D{Width: 18, Height: 90, Depth: 75},
		Pins: []LogicalPin{
			{Name: "coil+", Type: PinInput, RelX: 0.3, RelY: 0.0, RelZ: 0.5},
			{Name: "coil-", Type: PinGround, RelX: 0.7, RelY: 0.0, RelZ: 0.5},
			{Name: "com", Type: PinPower, RelX: 0.3, RelY: 1.0, RelZ: 0.5},
			{Name: "no", Type: PinOutput, RelX: 0.7, RelY: 1.0, RelZ: 0.5},
		},
	},
}
