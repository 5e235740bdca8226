package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	axisLineAlpha  = 160
)

// drawGrid draws a reference grid on the XZ plane at height y with X, Y and Z axis lines
// through (0, y, 0).
func drawGrid(y float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start = rl.NewVector3(float32(i), y, -gridExtent)
		end = rl.NewVector3(float32(i), y, gridExtent)
		rl.DrawLine3D(start, end, c)
		start = rl.NewVector3(-gridExtent, y, float32(i))
		end = rl.NewVector3(gridExtent, y, float32(i))
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, y, 0), rl.NewVector3(gridExtent, y, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, y-gridExtent, 0), rl.NewVector3(0, y+gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, y, -gridExtent), rl.NewVector3(0, y, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
