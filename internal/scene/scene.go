package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera. Position and Target are world coordinates; Fovy is in degrees.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Fovy     float64
}

// LookAt aims the camera at target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
}

// DefaultCamera is placed at (8,5,8) looking at the origin with a 75° vertical field of view.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl64.Vec3{8, 5, 8},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
		Fovy:     75,
	}
}

// Options configures New. Zero values fall back to the defaults.
type Options struct {
	Camera         *Camera
	ParticleCount  int
	ParticleSpread float64
}

// Scene owns every piece of mutable demo state: the camera, the animation flag, the named shapes,
// the lights and the static decoration. It is not safe for concurrent use; all access happens on
// the render loop goroutine.
type Scene struct {
	Camera           Camera
	AnimationEnabled bool

	Shapes    Shapes
	Ground    *Shape
	Lights    Lights
	Fog       Fog
	Particles Particles

	home Camera
}

// New builds the demo scene: cube, sphere and torus in a row, a translucent ground plane,
// three lights, fog and a particle field. Animation starts enabled.
func New(opts Options, rng Rand) *Scene {
	home := DefaultCamera()
	if opts.Camera != nil {
		home = *opts.Camera
	}
	count := opts.ParticleCount
	if count == 0 {
		count = DefaultParticleCount
	}
	spread := opts.ParticleSpread
	if spread <= 0 {
		spread = DefaultParticleSpread
	}
	return &Scene{
		Camera:           home,
		AnimationEnabled: true,
		Shapes:           defaultShapes(),
		Ground:           defaultGround(),
		Lights:           defaultLights(),
		Fog:              Fog{Color: Hex(0x1e3c72), Near: 10, Far: 50},
		Particles:        NewParticles(rng, count, spread),
		home:             home,
	}
}

// Home returns the camera ResetCamera restores.
func (s *Scene) Home() Camera {
	return s.home
}

// SetHome replaces the camera ResetCamera restores. The current camera is not moved.
func (s *Scene) SetHome(c Camera) {
	s.home = c
}

// ToggleAnimation flips the animation flag.
func (s *Scene) ToggleAnimation() {
	s.AnimationEnabled = !s.AnimationEnabled
}

// ChangeColors gives every shape a uniformly random 24-bit color.
func (s *Scene) ChangeColors(rng Rand) {
	for _, shape := range s.Shapes.All() {
		shape.Material.Color = Hex(rng.Uint32() & 0xffffff)
	}
}

// ResetCamera moves the camera back to its home position and aims it at the origin.
func (s *Scene) ResetCamera() {
	s.Camera.Position = s.home.Position
	s.Camera.Up = s.home.Up
	s.Camera.Fovy = s.home.Fovy
	s.Camera.LookAt(mgl64.Vec3{})
}
