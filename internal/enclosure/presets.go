package enclosure

import "panel-router/pkg/geometry"

// DIN 43880 module pitch: one module unit on a 35mm top-hat rail.
const ModuleWidthMM = 18.0

// Standard800x600x200 returns a common wall-mounted distribution enclosure:
// 800mm wide, 600mm tall, 200mm deep, with three horizontal DIN rails
// mounted on the back plane.
func Standard800x600x200() *Enclosure {
	return &Enclosure{
		Width:  800,
		Height: 600,
		Depth:  200,
		Rails: []Rail{
			{ID: "rail-1", Position: geometry.NewPoint3D(40, 120, 10), Length: 720, Orientation: Horizontal, MaxModules: 40},
			{ID: "rail-2", Position: geometry.NewPoint3D(40, 300, 10), Length: 720, Orientation: Horizontal, MaxModules: 40},
			{ID: "rail-3", Position: geometry.NewPoint3D(40, 480, 10), Length: 720, Orientation: Horizontal, MaxModules: 40},
		},
	}
}

// Compact400x300x150 returns a small consumer-unit enclosure with a single
// horizontal rail.
func Compact400x300x150() *Enclosure {
	return &Enclosure{
		Width:  400,
		Height: 300,
		Depth:  150,
		Rails: []Rail{
			{ID: "rail-1", Position: geometry.NewPoint3D(20, 150, 10), Length: 360, Orientation: Horizontal, MaxModules: 20},
		},
	}
}
