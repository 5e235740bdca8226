// Package headless provides a renderer for running the frame loop without a window,
// e.g. in CI or when only the remote control is wanted.
package headless

import (
	"github.com/charmbracelet/log"

	"shapes-demo/internal/scene"
)

// DefaultEvery is how many frames pass between log lines.
const DefaultEvery = 60

// Renderer logs a summary of the scene every Every frames instead of drawing it.
type Renderer struct {
	log    *log.Logger
	every  uint64
	frames uint64
	last   Snapshot
}

// Snapshot is what the renderer saw on its most recent frame.
type Snapshot struct {
	Frame     uint64
	Animation bool
	Camera    [3]float64
	Distance  float64
	CubeSpin  float64
	SphereY   float64
	Light     [3]float64
}

// New returns a renderer logging every n frames; n of 0 uses DefaultEvery.
func New(logger *log.Logger, n uint64) *Renderer {
	if n == 0 {
		n = DefaultEvery
	}
	return &Renderer{log: logger, every: n}
}

// Render records scn and logs it on every n-th frame.
func (r *Renderer) Render(scn *scene.Scene) {
	r.frames++
	r.last = Snapshot{
		Frame:     r.frames,
		Animation: scn.AnimationEnabled,
		Camera:    scn.Camera.Position,
		Distance:  scn.Camera.Position.Len(),
		CubeSpin:  scn.Shapes.Cube.Rotation[1],
		SphereY:   scn.Shapes.Sphere.Position[1],
		Light:     scn.Lights.Point.Position,
	}
	if r.frames%r.every != 0 {
		return
	}
	s := r.last
	r.log.Info("frame",
		"n", s.Frame,
		"animation", s.Animation,
		"camera", s.Camera,
		"distance", s.Distance,
		"sphere_y", s.SphereY,
		"light", s.Light,
	)
}

// Frames returns how many frames were rendered.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Last returns the snapshot of the most recent frame.
func (r *Renderer) Last() Snapshot {
	return r.last
}
