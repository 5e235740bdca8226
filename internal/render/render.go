// Package render draws the scene with raylib.
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"shapes-demo/internal/debug"
	"shapes-demo/internal/primitives"
	"shapes-demo/internal/scene"
	"shapes-demo/internal/ui"
)

const (
	// groundGridLift keeps the grid from z-fighting with the ground plane.
	groundGridLift  = 0.01
	lightMarkerSize = 0.2
)

// Renderer draws one frame: background, lit shapes, ground, particles, then the overlays.
// It implements animation.Renderer and must run on the window goroutine.
type Renderer struct {
	shapes *primitives.Registry
	ui     *ui.Engine
	panel  *ui.ControlPanel
	debug  *debug.Overlay

	// ShowControls draws the control panel.
	ShowControls bool
	// GridVisible draws a reference grid on the ground.
	GridVisible bool
	// LightMarker draws a small sphere at the point light.
	LightMarker bool
	// Console is drawn last, over everything else.
	Console interface{ Draw() }
}

// New returns a renderer. panel and dbg may be nil.
func New(shapes *primitives.Registry, eng *ui.Engine, panel *ui.ControlPanel, dbg *debug.Overlay) *Renderer {
	return &Renderer{
		shapes:       shapes,
		ui:           eng,
		panel:        panel,
		debug:        dbg,
		ShowControls: panel != nil,
	}
}

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

// Camera3D converts the scene camera to a raylib perspective camera.
func Camera3D(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       float32(c.Fovy),
		Projection: rl.CameraPerspective,
	}
}

// Render draws scn.
func (r *Renderer) Render(scn *scene.Scene) {
	cam := Camera3D(scn.Camera)

	rl.BeginDrawing()
	rl.ClearBackground(scn.Fog.Color)

	rl.BeginMode3D(cam)
	r.shapes.SetLights(cam.Position, scn.Lights, scn.Fog)
	for _, s := range scn.Shapes.All() {
		r.shapes.Draw(s)
	}
	if r.GridVisible {
		drawGrid(float32(scn.Ground.Position[1]) + groundGridLift)
	}
	r.shapes.Draw(scn.Ground)
	drawParticles(scn.Particles)
	if r.LightMarker {
		rl.DrawSphere(vec3(scn.Lights.Point.Position), lightMarkerSize, scn.Lights.Point.Color)
	}
	rl.EndMode3D()

	if r.ShowControls && r.panel != nil {
		r.panel.Update(scn.AnimationEnabled)
		r.ui.Draw()
	}
	if r.debug != nil {
		r.debug.Draw(scn)
	}
	if r.Console != nil {
		r.Console.Draw()
	}
	rl.EndDrawing()
}

func drawParticles(p scene.Particles) {
	c := color.RGBA{p.Color.R, p.Color.G, p.Color.B, uint8(p.Opacity * 255)}
	size := rl.NewVector3(p.Size, p.Size, p.Size)
	for _, pos := range p.Positions {
		rl.DrawCubeV(rl.NewVector3(pos[0], pos[1], pos[2]), size, c)
	}
}
