package animation

import (
	"context"
	"math"

	"github.com/charmbracelet/log"

	"shapes-demo/internal/scene"
)

// Per-tick rotation increments in radians. These accumulate, so spin speed follows the frame rate.
const (
	cubeSpin       = 0.01
	sphereSpin     = 0.005
	torusSpinX     = 0.02
	torusSpinY     = 0.01
	bobSpeed       = 0.5
	bobHeight      = 0.5
	lightOrbitRate = 0.5
	lightOrbitSize = 10
)

// Renderer draws a frame of the scene.
type Renderer interface {
	Render(scn *scene.Scene)
}

// FrameSource paces the loop. Next blocks until the next display refresh and reports false
// when no more frames will come (e.g. the window was closed).
type FrameSource interface {
	Next() bool
}

// Scheduler runs one tick per frame: hooks, animation, render, after hooks.
type Scheduler struct {
	scene    *scene.Scene
	clock    Clock
	renderer Renderer
	log      *log.Logger
	hooks    []func()
	after    []func()
	ticks    uint64
}

// New returns a scheduler that animates scn with time from clock and draws with r.
func New(scn *scene.Scene, clock Clock, r Renderer, logger *log.Logger) *Scheduler {
	return &Scheduler{
		scene:    scn,
		clock:    clock,
		renderer: r,
		log:      logger,
	}
}

// BeforeTick registers fn to run at the start of every tick, before the scene is animated.
// Hooks run in registration order.
func (s *Scheduler) BeforeTick(fn func()) {
	s.hooks = append(s.hooks, fn)
}

// AfterTick registers fn to run at the end of every tick, after the frame is rendered.
func (s *Scheduler) AfterTick(fn func()) {
	s.after = append(s.after, fn)
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick runs one frame: before hooks, animation if enabled, render, then after hooks.
func (s *Scheduler) Tick() {
	for _, fn := range s.hooks {
		fn()
	}
	elapsed := s.clock.Elapsed()
	if s.scene.AnimationEnabled {
		Animate(s.scene, elapsed)
	}
	s.renderer.Render(s.scene)
	s.ticks++
	for _, fn := range s.after {
		fn()
	}
}

// Run ticks once per frame until frames runs out or ctx is cancelled.
// It returns ctx.Err() on cancellation and nil otherwise.
func (s *Scheduler) Run(ctx context.Context, frames FrameSource) error {
	s.log.Info("frame loop started")
	defer func() { s.log.Info("frame loop stopped", "ticks", s.ticks) }()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !frames.Next() {
			return nil
		}
		s.Tick()
	}
}

// Animate applies one tick of animation at elapsed seconds. Rotations accumulate per call;
// the sphere's height and the point light's orbit are functions of elapsed alone.
func Animate(scn *scene.Scene, elapsed float64) {
	cube, sphere, torus := scn.Shapes.Cube, scn.Shapes.Sphere, scn.Shapes.Torus

	cube.Rotation[0] += cubeSpin
	cube.Rotation[1] += cubeSpin

	sphere.Rotation[1] += sphereSpin
	sphere.Position[1] = math.Sin(elapsed*bobSpeed) * bobHeight

	torus.Rotation[0] += torusSpinX
	torus.Rotation[1] += torusSpinY

	light := &scn.Lights.Point
	light.Position[0] = math.Cos(elapsed*lightOrbitRate) * lightOrbitSize
	light.Position[2] = math.Sin(elapsed*lightOrbitRate) * lightOrbitSize
}
