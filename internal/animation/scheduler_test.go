package animation

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"shapes-demo/internal/scene"
)

type fakeClock struct{ t float64 }

func (c *fakeClock) Elapsed() float64 { return c.t }

type countingRenderer struct{ frames int }

func (r *countingRenderer) Render(*scene.Scene) { r.frames++ }

type countedFrames struct{ left int }

func (f *countedFrames) Next() bool {
	if f.left == 0 {
		return false
	}
	f.left--
	return true
}

type snapshot struct {
	cube, sphere, torus mgl64.Vec3
	light               mgl64.Vec3
	sphereY             float64
}

func take(s *scene.Scene) snapshot {
	return snapshot{
		cube:    s.Shapes.Cube.Rotation,
		sphere:  s.Shapes.Sphere.Rotation,
		torus:   s.Shapes.Torus.Rotation,
		light:   s.Lights.Point.Position,
		sphereY: s.Shapes.Sphere.Position.Y(),
	}
}

func newScheduler() (*Scheduler, *scene.Scene, *fakeClock, *countingRenderer) {
	scn := scene.New(scene.Options{}, scene.NewRand(1))
	clk := &fakeClock{}
	r := &countingRenderer{}
	return New(scn, clk, r, log.New(io.Discard)), scn, clk, r
}

func TestPausedTicksChangeNothing(t *testing.T) {
	s, scn, clk, r := newScheduler()
	scn.AnimationEnabled = false

	clk.t = 1
	s.Tick()
	before := take(scn)
	clk.t = 2.5
	s.Tick()

	if take(scn) != before {
		t.Fatalf("paused tick changed state: %+v -> %+v", before, take(scn))
	}
	if r.frames != 2 {
		t.Fatalf("rendered %d frames, want 2", r.frames)
	}
}

func TestRotationsAccumulate(t *testing.T) {
	s, scn, clk, _ := newScheduler()
	for i := 0; i < 3; i++ {
		clk.t = float64(i) * 0.016
		s.Tick()
	}
	got := take(scn)
	tests := []struct {
		name string
		got  mgl64.Vec3
		want mgl64.Vec3
	}{
		{"cube", got.cube, mgl64.Vec3{0.03, 0.03, 0}},
		{"sphere", got.sphere, mgl64.Vec3{0, 0.015, 0}},
		{"torus", got.torus, mgl64.Vec3{0.06, 0.03, 0}},
	}
	for _, tt := range tests {
		if !tt.got.ApproxEqualThreshold(tt.want, 1e-12) {
			t.Errorf("%s rotation = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSphereHeightIsFunctionOfTime(t *testing.T) {
	for _, history := range []int{0, 1, 7, 100} {
		s, scn, clk, _ := newScheduler()
		for i := 0; i < history; i++ {
			clk.t = float64(i) * 0.37
			s.Tick()
		}
		clk.t = 4.2
		s.Tick()
		want := math.Sin(4.2*0.5) * 0.5
		if got := scn.Shapes.Sphere.Position.Y(); math.Abs(got-want) > 1e-12 {
			t.Fatalf("after %d ticks sphere y = %v, want %v", history, got, want)
		}
	}
}

func TestPointLightOrbit(t *testing.T) {
	s, scn, clk, _ := newScheduler()
	clk.t = 3
	s.Tick()
	p := scn.Lights.Point.Position
	want := mgl64.Vec3{math.Cos(1.5) * 10, 10, math.Sin(1.5) * 10}
	if !p.ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("light = %v, want %v", p, want)
	}
}

func TestPauseFreezesRotationButNotTimePositions(t *testing.T) {
	s, scn, clk, _ := newScheduler()
	clk.t = 1
	s.Tick()
	frozen := scn.Shapes.Cube.Rotation

	scn.ToggleAnimation()
	clk.t = 20
	s.Tick()
	scn.ToggleAnimation()
	clk.t = 30
	s.Tick()

	if want := frozen.Add(mgl64.Vec3{0.01, 0.01, 0}); !scn.Shapes.Cube.Rotation.ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("cube rotation = %v, want %v", scn.Shapes.Cube.Rotation, want)
	}
	if want := math.Sin(15) * 0.5; math.Abs(scn.Shapes.Sphere.Position.Y()-want) > 1e-12 {
		t.Fatalf("sphere y = %v, want %v", scn.Shapes.Sphere.Position.Y(), want)
	}
}

func TestHooksRunBeforeAnimation(t *testing.T) {
	s, scn, _, _ := newScheduler()
	var order []string
	s.BeforeTick(func() {
		order = append(order, "first")
		scn.AnimationEnabled = false
	})
	s.BeforeTick(func() { order = append(order, "second") })

	s.Tick()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("hook order = %v", order)
	}
	if scn.Shapes.Cube.Rotation != (mgl64.Vec3{}) {
		t.Fatal("hook disabling animation should take effect the same tick")
	}
}

func TestAfterTickSeesRenderedFrame(t *testing.T) {
	s, _, _, r := newScheduler()
	var seen []int
	s.AfterTick(func() { seen = append(seen, r.frames) })
	s.Tick()
	s.Tick()
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("after hooks saw frames %v, want [1 2]", seen)
	}
}

func TestRunBoundedFrames(t *testing.T) {
	s, _, _, r := newScheduler()
	if err := s.Run(context.Background(), &countedFrames{left: 5}); err != nil {
		t.Fatal(err)
	}
	if r.frames != 5 || s.Ticks() != 5 {
		t.Fatalf("frames = %d ticks = %d, want 5", r.frames, s.Ticks())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _, _, r := newScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	s.BeforeTick(func() {
		if s.Ticks() == 2 {
			cancel()
		}
	})
	err := s.Run(ctx, &countedFrames{left: -1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if r.frames != 3 {
		t.Fatalf("frames = %d, want 3", r.frames)
	}
}

func TestTickerFramesLimit(t *testing.T) {
	f := NewTickerFrames(context.Background(), time.Millisecond, 3)
	defer f.Stop()
	n := 0
	for f.Next() {
		n++
	}
	if n != 3 {
		t.Fatalf("frames = %d, want 3", n)
	}
}

func TestTickerFramesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewTickerFrames(ctx, time.Hour, 0)
	defer f.Stop()
	if f.Next() {
		t.Fatal("Next should report false after cancel")
	}
}

func TestMonotonicClock(t *testing.T) {
	c := NewClock()
	a := c.Elapsed()
	time.Sleep(2 * time.Millisecond)
	b := c.Elapsed()
	if a < 0 || b < a {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}
