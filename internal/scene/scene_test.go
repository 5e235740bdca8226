package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type seqRand struct {
	u []uint32
	i int
}

func (r *seqRand) Float64() float64 { return 0.75 }

func (r *seqRand) Uint32() uint32 {
	v := r.u[r.i%len(r.u)]
	r.i++
	return v
}

func newTestScene() *Scene {
	return New(Options{}, NewRand(1))
}

func TestNewLayout(t *testing.T) {
	s := newTestScene()

	if !s.AnimationEnabled {
		t.Fatal("animation should start enabled")
	}
	if s.Camera.Position != (mgl64.Vec3{8, 5, 8}) || s.Camera.Target != (mgl64.Vec3{}) {
		t.Fatalf("camera = %+v, want (8,5,8) looking at origin", s.Camera)
	}
	want := []struct {
		kind Kind
		pos  mgl64.Vec3
	}{
		{KindCube, mgl64.Vec3{-4, 0, 0}},
		{KindSphere, mgl64.Vec3{0, 0, 0}},
		{KindTorus, mgl64.Vec3{4, 0, 0}},
	}
	all := s.Shapes.All()
	if len(all) != len(want) {
		t.Fatalf("got %d shapes, want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].Kind != w.kind || all[i].Position != w.pos {
			t.Errorf("shape %d = %v at %v, want %v at %v", i, all[i].Kind, all[i].Position, w.kind, w.pos)
		}
	}
	if got := len(s.Particles.Positions); got != DefaultParticleCount {
		t.Fatalf("particles = %d, want %d", got, DefaultParticleCount)
	}
	for _, p := range s.Particles.Positions {
		for _, c := range p {
			if c < -DefaultParticleSpread/2 || c > DefaultParticleSpread/2 {
				t.Fatalf("particle %v outside the spread", p)
			}
		}
	}
}

func TestShapeIDsAreUnique(t *testing.T) {
	s := newTestScene()
	seen := map[string]bool{}
	for _, shape := range append(s.Shapes.All(), s.Ground) {
		id := shape.ID.String()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestToggleAnimationTwice(t *testing.T) {
	s := newTestScene()
	before := s.AnimationEnabled
	s.ToggleAnimation()
	if s.AnimationEnabled == before {
		t.Fatal("toggle did not flip the flag")
	}
	s.ToggleAnimation()
	if s.AnimationEnabled != before {
		t.Fatal("two toggles should restore the flag")
	}
}

func TestResetCameraIdempotent(t *testing.T) {
	s := newTestScene()
	s.Camera.Position = mgl64.Vec3{1, 2, 30}
	s.Camera.Target = mgl64.Vec3{4, 4, 4}

	s.ResetCamera()
	once := s.Camera
	s.ResetCamera()
	if s.Camera != once {
		t.Fatalf("second reset changed camera: %+v vs %+v", s.Camera, once)
	}
	if once.Position != (mgl64.Vec3{8, 5, 8}) || once.Target != (mgl64.Vec3{}) {
		t.Fatalf("reset camera = %+v", once)
	}
}

func TestResetCameraUsesHome(t *testing.T) {
	home := DefaultCamera()
	home.Position = mgl64.Vec3{0, 10, 20}
	s := New(Options{Camera: &home}, NewRand(1))
	s.Camera.Position = mgl64.Vec3{3, 3, 3}
	s.ResetCamera()
	if s.Camera.Position != home.Position {
		t.Fatalf("position = %v, want %v", s.Camera.Position, home.Position)
	}
}

func TestChangeColors(t *testing.T) {
	s := newTestScene()
	rng := &seqRand{u: []uint32{0x12345678, 0xffffffff, 0x00000001}}
	s.ChangeColors(rng)

	want := []uint32{0x345678, 0xffffff, 0x000001}
	for i, shape := range s.Shapes.All() {
		if shape.Material.Color != Hex(want[i]) {
			t.Errorf("%s color = %v, want %v", shape.Name, shape.Material.Color, Hex(want[i]))
		}
		if shape.Material.Color.A != 255 {
			t.Errorf("%s alpha = %d, want 255", shape.Name, shape.Material.Color.A)
		}
	}
	if s.Ground.Material.Color != Hex(0x2c3e50) {
		t.Fatal("ground color should not change")
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(Hex(0x4ecdc4)); got != "#4ecdc4" {
		t.Fatalf("HexString = %q", got)
	}
}
